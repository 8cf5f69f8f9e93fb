package formfields

import (
	"log"

	"Backend-Slotify/src/models"
)

// labelSuppressed - boolean กับ multiemail มี label ในตัว component เอง
// ไม่ต้องมี label ครอบอีกชั้น
func labelSuppressed(t models.FieldType) bool {
	return t == models.FieldTypeBoolean || t == models.FieldTypeMultiemail
}

// RenderForm walks the form's ordered fields and mounts a component for
// each entry. Hidden fields stay in the output in a non-displayed state so
// their bound value persists in form state. fieldErrors is the aggregated
// "[fieldName]message" channel; each entry is surfaced only under its own
// field and suppressed everywhere else.
func RenderForm(form *models.BookingForm, responses map[string]interface{}, fieldErrors []string, readOnly bool) (*models.RenderedForm, error) {
	rendered := &models.RenderedForm{
		FormID:      form.ID,
		Title:       form.Title,
		Description: form.Description,
		ReadOnly:    readOnly,
		Fields:      make([]models.RenderedField, 0, len(form.Fields)),
	}

	for _, field := range form.Fields {
		comp, err := BuildComponent(field, responses[field.Name])
		if err != nil {
			return nil, err
		}
		if comp == nil {
			// Deliberate empty state: nothing to mount for this field.
			continue
		}

		props, _ := models.FieldTypePropsOf(field.Type)
		fieldReadOnly := readOnly || field.Editability() == models.EditabilityUserReadonly
		required := field.EffectiveRequired()

		label := field.DisplayLabel()
		showLabel := !(labelSuppressed(field.Type) && label != "")
		if showLabel && required && !fieldReadOnly {
			label += " *"
		}

		rf := models.RenderedField{
			Name:          field.Name,
			Type:          field.Type,
			PropsType:     comp.PropsType,
			Label:         label,
			ShowLabel:     showLabel,
			Required:      required,
			ReadOnly:      fieldReadOnly,
			Hidden:        field.Hidden,
			Value:         comp.Value,
			Options:       comp.Options,
			OptionsInputs: comp.OptionsInputs,
		}
		if props.IsTextType {
			rf.Placeholder = field.DisplayPlaceholder()
		}

		if msg, ok := errorFor(field.Name, fieldErrors); ok {
			rf.Error = msg
			if field.Hidden {
				// ซ่อนอยู่แต่ validate ไม่ผ่าน = สถานะไม่สอดคล้อง ต้อง log ไว้ตาม
				log.Printf("⚠️ hidden field %q carries a validation error: %s", field.Name, msg)
			}
		}

		rendered.Fields = append(rendered.Fields, rf)
	}

	return rendered, nil
}

// errorFor picks the first aggregated-channel entry addressed to name.
func errorFor(name string, entries []string) (string, bool) {
	for _, entry := range entries {
		if field, msg, ok := ParseFieldError(entry); ok && field == name {
			return msg, true
		}
	}
	return "", false
}
