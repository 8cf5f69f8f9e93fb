package formfields

import (
	"Backend-Slotify/src/models"
)

// Component is the bound contract the renderer mounts for one field: the
// resolved props type, the validated value, and the ancillary data that
// props type requires.
type Component struct {
	PropsType     models.PropsType              `json:"propsType"`
	Value         interface{}                   `json:"value,omitempty"`
	Options       []models.FieldOption          `json:"options,omitempty"`
	OptionsInputs map[string]models.OptionInput `json:"optionsInputs,omitempty"`
}

// ObjectiveValue คำตอบสองส่วนของ component แบบ objectiveWithInput:
// ตัวเลือกที่เลือก และข้อความที่กรอกใน input ของตัวเลือกนั้น
type ObjectiveValue struct {
	Value       string `json:"value"`
	OptionValue string `json:"optionValue"`
}

// BuildComponent resolves the component contract for field and checks that
// value matches the contract's runtime shape. A value supplied with the
// wrong shape, a missing options list, or an unrecognized type is a
// SchemaError: an upstream bug, never a user-facing validation failure,
// and never silently coerced. A nil component with a nil error means the
// field deliberately renders nothing.
func BuildComponent(field models.FormField, value interface{}) (*Component, error) {
	props, ok := models.FieldTypePropsOf(field.Type)
	if !ok {
		return nil, schemaErrorf(field.Name, "unknown field type %q", field.Type)
	}

	comp := &Component{PropsType: props.PropsType}

	switch props.PropsType {
	case models.PropsTypeText:
		if value != nil {
			s, ok := value.(string)
			if !ok {
				return nil, schemaErrorf(field.Name, "got %T where the text component needs a string", value)
			}
			comp.Value = s
		}

	case models.PropsTypeBoolean:
		if value != nil {
			b, ok := value.(bool)
			if !ok {
				return nil, schemaErrorf(field.Name, "got %T where the boolean component needs a bool", value)
			}
			comp.Value = b
		}

	case models.PropsTypeTextList:
		if value != nil {
			list, ok := stringList(value)
			if !ok {
				return nil, schemaErrorf(field.Name, "got %T where the textList component needs a list of strings", value)
			}
			comp.Value = list
		}

	case models.PropsTypeSelect:
		if len(field.Options) == 0 {
			return nil, schemaErrorf(field.Name, "select component rendered without options")
		}
		comp.Options = field.Options
		if value != nil {
			s, ok := value.(string)
			if !ok {
				return nil, schemaErrorf(field.Name, "got %T where the select component needs a string", value)
			}
			comp.Value = s
		}

	case models.PropsTypeMultiselect:
		if len(field.Options) == 0 {
			return nil, schemaErrorf(field.Name, "multiselect component rendered without options")
		}
		comp.Options = field.Options
		if value != nil {
			list, ok := stringList(value)
			if !ok {
				return nil, schemaErrorf(field.Name, "got %T where the multiselect component needs a list of strings", value)
			}
			comp.Value = list
		}

	case models.PropsTypeObjectiveWithInput:
		// No options means the form has nothing to offer here; render
		// nothing rather than fail.
		if len(field.Options) == 0 {
			return nil, nil
		}
		if len(field.OptionsInputs) == 0 {
			return nil, schemaErrorf(field.Name, "objectiveWithInput component rendered without optionsInputs")
		}
		comp.Options = field.Options
		comp.OptionsInputs = field.OptionsInputs
		if value != nil {
			ov, ok := objectiveValue(value)
			if !ok {
				return nil, schemaErrorf(field.Name, "got %T where the objectiveWithInput component needs {value, optionValue}", value)
			}
			comp.Value = ov
		}

	default:
		// A field type added to the registry without a dispatcher branch
		// fails closed instead of silently skipping the field.
		return nil, schemaErrorf(field.Name, "no component registered for props type %q", props.PropsType)
	}

	return comp, nil
}

// stringList normalizes a textList/multiselect value. JSON bodies decode
// string arrays as []interface{}, so both forms are accepted.
func stringList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	}
	return nil, false
}

// objectiveValue normalizes an objectiveWithInput value from either the
// typed form or a decoded JSON object.
func objectiveValue(value interface{}) (ObjectiveValue, bool) {
	switch v := value.(type) {
	case ObjectiveValue:
		return v, true
	case map[string]interface{}:
		inner, okValue := v["value"].(string)
		optionValue, okOption := v["optionValue"].(string)
		if !okValue || !okOption {
			return ObjectiveValue{}, false
		}
		return ObjectiveValue{Value: inner, OptionValue: optionValue}, true
	}
	return ObjectiveValue{}, false
}
