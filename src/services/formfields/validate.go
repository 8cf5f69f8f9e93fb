package formfields

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"Backend-Slotify/src/models"
)

var validate = validator.New()

// ValidateResponses checks one submitted answer set against the form's
// fields and returns the aggregated "[fieldName]message" error channel.
// An empty channel means the submission is valid. A non-nil error is an
// integration-class failure in the stored schema itself, not a problem
// with the submission.
func ValidateResponses(fields []models.FormField, responses map[string]interface{}) ([]string, error) {
	var errs []string

	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Name] = true
	}
	for name := range responses {
		if !known[name] {
			errs = append(errs, FieldError(name, "Unknown field"))
		}
	}

	for _, field := range fields {
		value, present := responses[field.Name]
		if !present || isEmptyAnswer(value) {
			// field ที่ถูกซ่อนไม่บังคับกรอก
			if field.EffectiveRequired() {
				errs = append(errs, FieldError(field.Name, "Required"))
			}
			continue
		}

		msg, err := validateAnswer(field, value)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			if field.Hidden {
				// hidden-but-invalid คือ state ที่ไม่สอดคล้องกัน - บันทึกไว้แต่ไม่ block
				log.Printf("⚠️ hidden field %q carries a validation error: %s", field.Name, msg)
				continue
			}
			errs = append(errs, FieldError(field.Name, msg))
		}
	}

	return errs, nil
}

// validateAnswer checks one supplied answer against the field's component
// contract, mirroring the shape table the dispatcher enforces at render
// time. The returned message is user-facing; err flags a broken schema.
func validateAnswer(field models.FormField, value interface{}) (string, error) {
	props, ok := models.FieldTypePropsOf(field.Type)
	if !ok {
		return "", schemaErrorf(field.Name, "unknown field type %q", field.Type)
	}

	switch props.PropsType {
	case models.PropsTypeText:
		s, ok := value.(string)
		if !ok {
			return "Expected a text value", nil
		}
		switch field.Type {
		case models.FieldTypeEmail:
			if validate.Var(s, "email") != nil {
				return "Invalid email address", nil
			}
		case models.FieldTypePhone:
			if !looksLikePhone(s) {
				return "Invalid phone number", nil
			}
		case models.FieldTypeNumber:
			if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				return "Expected a number", nil
			}
		}

	case models.PropsTypeBoolean:
		if _, ok := value.(bool); !ok {
			return "Expected a yes/no value", nil
		}

	case models.PropsTypeTextList:
		list, ok := stringList(value)
		if !ok {
			return "Expected a list of values", nil
		}
		if field.Type == models.FieldTypeMultiemail {
			for _, entry := range list {
				if validate.Var(entry, "email") != nil {
					return "Invalid email address: " + entry, nil
				}
			}
		}

	case models.PropsTypeSelect:
		s, ok := value.(string)
		if !ok {
			return "Expected a single choice", nil
		}
		if !optionExists(field.Options, s) {
			return "Not one of the available options", nil
		}

	case models.PropsTypeMultiselect:
		list, ok := stringList(value)
		if !ok {
			return "Expected a list of choices", nil
		}
		for _, choice := range list {
			if !optionExists(field.Options, choice) {
				return "Not one of the available options: " + choice, nil
			}
		}

	case models.PropsTypeObjectiveWithInput:
		// Without options the field renders nothing, so whatever was
		// submitted for it is not validated either.
		if len(field.Options) == 0 {
			return "", nil
		}
		ov, ok := objectiveValue(value)
		if !ok {
			return "Expected a choice with its input", nil
		}
		if !optionExists(field.Options, ov.OptionValue) {
			return "Not one of the available options", nil
		}
		if input, ok := field.OptionsInputs[ov.OptionValue]; ok {
			if input.Required && strings.TrimSpace(ov.Value) == "" {
				return "Required", nil
			}
		}

	default:
		return "", schemaErrorf(field.Name, "no validation for props type %q", props.PropsType)
	}

	return "", nil
}

func isEmptyAnswer(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	}
	return false
}

func optionExists(options []models.FieldOption, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// looksLikePhone is deliberately loose: strip formatting characters and
// require at least seven digits.
func looksLikePhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
			// formatting only
		default:
			return false
		}
	}
	return digits >= 7
}
