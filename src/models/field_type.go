package models

// FieldType ชนิดของ field ในฟอร์มจอง
type FieldType string

const (
	FieldTypeName        FieldType = "name"
	FieldTypeEmail       FieldType = "email"
	FieldTypePhone       FieldType = "phone"
	FieldTypeText        FieldType = "text"
	FieldTypeNumber      FieldType = "number"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiselect FieldType = "multiselect"
	FieldTypeMultiemail  FieldType = "multiemail"
	FieldTypeRadioInput  FieldType = "radioInput"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeBoolean     FieldType = "boolean"
)

// PropsType is the value-shape contract a rendering component commits to
// for a given FieldType.
type PropsType string

const (
	PropsTypeText               PropsType = "text"
	PropsTypeBoolean            PropsType = "boolean"
	PropsTypeTextList           PropsType = "textList"
	PropsTypeSelect             PropsType = "select"
	PropsTypeMultiselect        PropsType = "multiselect"
	PropsTypeObjectiveWithInput PropsType = "objectiveWithInput"
)

// FieldTypeProps คุณสมบัติคงที่ของ FieldType แต่ละชนิด
type FieldTypeProps struct {
	Label        string    `json:"label"`
	PropsType    PropsType `json:"propsType"`
	NeedsOptions bool      `json:"needsOptions"` // requires a non-empty options list at render time
	SystemOnly   bool      `json:"systemOnly"`   // reserved for system-generated fields, hidden from the picker
	IsTextType   bool      `json:"isTextType"`   // offers a placeholder input in the authoring dialog
}

// fieldTypeOrder keeps the picker in a stable, human-chosen order.
var fieldTypeOrder = []FieldType{
	FieldTypeName,
	FieldTypeEmail,
	FieldTypePhone,
	FieldTypeText,
	FieldTypeNumber,
	FieldTypeTextarea,
	FieldTypeSelect,
	FieldTypeMultiselect,
	FieldTypeMultiemail,
	FieldTypeRadioInput,
	FieldTypeCheckbox,
	FieldTypeRadio,
	FieldTypeBoolean,
}

var fieldTypeProps = map[FieldType]FieldTypeProps{
	FieldTypeName: {
		Label:      "Name",
		PropsType:  PropsTypeText,
		IsTextType: true,
	},
	FieldTypeEmail: {
		Label:      "Email",
		PropsType:  PropsTypeText,
		IsTextType: true,
	},
	FieldTypePhone: {
		Label:      "Phone",
		PropsType:  PropsTypeText,
		IsTextType: true,
	},
	FieldTypeText: {
		Label:      "Short Text",
		PropsType:  PropsTypeText,
		IsTextType: true,
	},
	FieldTypeNumber: {
		Label:      "Number",
		PropsType:  PropsTypeText,
		IsTextType: true,
	},
	FieldTypeTextarea: {
		Label:      "Long Text",
		PropsType:  PropsTypeText,
		IsTextType: true,
	},
	FieldTypeSelect: {
		Label:        "Select",
		PropsType:    PropsTypeSelect,
		NeedsOptions: true,
	},
	FieldTypeMultiselect: {
		Label:        "MultiSelect",
		PropsType:    PropsTypeMultiselect,
		NeedsOptions: true,
	},
	FieldTypeMultiemail: {
		Label:      "Multiple Emails",
		PropsType:  PropsTypeTextList,
		IsTextType: true,
	},
	FieldTypeRadioInput: {
		Label:        "Radio Input",
		PropsType:    PropsTypeObjectiveWithInput,
		NeedsOptions: true,
		SystemOnly:   true,
	},
	FieldTypeCheckbox: {
		Label:        "Checkbox Group",
		PropsType:    PropsTypeMultiselect,
		NeedsOptions: true,
	},
	FieldTypeRadio: {
		Label:        "Radio Group",
		PropsType:    PropsTypeSelect,
		NeedsOptions: true,
	},
	FieldTypeBoolean: {
		Label:     "Checkbox",
		PropsType: PropsTypeBoolean,
	},
}

// FieldTypePropsOf ดึงคุณสมบัติของ FieldType; ok=false เมื่อไม่รู้จักชนิดนั้น
func FieldTypePropsOf(t FieldType) (FieldTypeProps, bool) {
	props, ok := fieldTypeProps[t]
	return props, ok
}

// IsValid reports whether t is one of the known field types.
func (t FieldType) IsValid() bool {
	_, ok := fieldTypeProps[t]
	return ok
}

// PickerFieldTypes returns the field types an authoring user may choose from,
// excluding system-only types.
func PickerFieldTypes() []FieldType {
	types := make([]FieldType, 0, len(fieldTypeOrder))
	for _, t := range fieldTypeOrder {
		if fieldTypeProps[t].SystemOnly {
			continue
		}
		types = append(types, t)
	}
	return types
}

// AllFieldTypes returns every known field type in picker order.
func AllFieldTypes() []FieldType {
	types := make([]FieldType, len(fieldTypeOrder))
	copy(types, fieldTypeOrder)
	return types
}
