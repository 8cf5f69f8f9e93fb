package formfields

import (
	"fmt"

	"Backend-Slotify/src/models"
)

// optionFloor ฟอร์มแบบเลือกต้องมีตัวเลือกอย่างน้อยสองตัว
const optionFloor = 2

// DefaultOptions seeds the options editor for a fresh option-based field.
func DefaultOptions() []models.FieldOption {
	return []models.FieldOption{
		{Label: "Option 1", Value: "option 1"},
		{Label: "Option 2", Value: "option 2"},
	}
}

// AddOption appends a new placeholder option.
func AddOption(opts []models.FieldOption) []models.FieldOption {
	label := fmt.Sprintf("Option %d", len(opts)+1)
	return append(opts, models.FieldOption{
		Label: label,
		Value: models.DeriveOptionValue(label),
	})
}

// RemoveOption removes the option at index i. The editor enforces a floor
// of two options; deleting below that is rejected.
func RemoveOption(opts []models.FieldOption, i int) ([]models.FieldOption, error) {
	if i < 0 || i >= len(opts) {
		return opts, ErrIndexOutOfRange
	}
	if len(opts) <= optionFloor {
		return opts, ErrOptionFloor
	}
	return append(opts[:i], opts[i+1:]...), nil
}

// SetOptionLabel updates an option's label and re-derives its value. The
// label is the source of truth; the value is never edited on its own.
func SetOptionLabel(opts []models.FieldOption, i int, label string) error {
	if i < 0 || i >= len(opts) {
		return ErrIndexOutOfRange
	}
	opts[i].Label = label
	opts[i].Value = models.DeriveOptionValue(label)
	return nil
}

// NormalizeOptions re-derives every option value from its label, in place.
// Run before persisting so stored values always match their labels.
func NormalizeOptions(opts []models.FieldOption) {
	for i := range opts {
		opts[i].Value = models.DeriveOptionValue(opts[i].Label)
	}
}
