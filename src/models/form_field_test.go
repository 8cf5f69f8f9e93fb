package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldEditability(t *testing.T) {
	t.Run("LegacyFieldsCountAsUser", func(t *testing.T) {
		legacy := FormField{Name: "old", Type: FieldTypeText}
		assert.Equal(t, EditabilityUser, legacy.Editability())
		assert.False(t, legacy.IsSystemField())
		assert.True(t, legacy.CanDelete())
		assert.True(t, legacy.CanToggleHidden())
		assert.False(t, legacy.TypeLocked())
	})

	t.Run("SystemFieldsAreFullyProtected", func(t *testing.T) {
		f := FormField{Name: "email", Type: FieldTypeEmail, Editable: EditabilitySystem}
		assert.True(t, f.IsSystemField())
		assert.False(t, f.CanDelete())
		assert.False(t, f.CanToggleHidden())
		assert.True(t, f.TypeLocked())
	})

	t.Run("SystemButOptionalCanHideOnly", func(t *testing.T) {
		f := FormField{Name: "notes", Type: FieldTypeTextarea, Editable: EditabilitySystemButOptional}
		assert.True(t, f.IsSystemField())
		assert.False(t, f.CanDelete())
		assert.True(t, f.CanToggleHidden())
		assert.True(t, f.TypeLocked())
	})

	t.Run("UserReadonlyKeepsUserRights", func(t *testing.T) {
		f := FormField{Name: "badge", Type: FieldTypeText, Editable: EditabilityUserReadonly}
		assert.False(t, f.IsSystemField())
		assert.True(t, f.CanDelete())
		assert.True(t, f.CanToggleHidden())
		assert.False(t, f.TypeLocked())
	})
}

func TestEffectiveRequired(t *testing.T) {
	f := FormField{Name: "name", Type: FieldTypeName, Required: true}
	assert.True(t, f.EffectiveRequired())

	// field ที่ถูกซ่อนไม่บังคับกรอก
	f.Hidden = true
	assert.False(t, f.EffectiveRequired())

	f.Hidden = false
	f.Required = false
	assert.False(t, f.EffectiveRequired())
}

func TestDisplayLabelAndPlaceholder(t *testing.T) {
	t.Run("OwnLabelWins", func(t *testing.T) {
		f := FormField{Name: "notes", Label: "Notes", DefaultLabel: "Additional notes"}
		assert.Equal(t, "Notes", f.DisplayLabel())
	})

	t.Run("FallsBackToDefaultLabelThenName", func(t *testing.T) {
		f := FormField{Name: "notes", DefaultLabel: "Additional notes"}
		assert.Equal(t, "Additional notes", f.DisplayLabel())

		f.DefaultLabel = ""
		assert.Equal(t, "notes", f.DisplayLabel())
	})

	t.Run("PlaceholderPrecedence", func(t *testing.T) {
		f := FormField{Placeholder: "Type here", DefaultPlaceholder: "Share anything"}
		assert.Equal(t, "Type here", f.DisplayPlaceholder())

		f.Placeholder = ""
		assert.Equal(t, "Share anything", f.DisplayPlaceholder())
	})
}

func TestDeriveOptionValue(t *testing.T) {
	assert.Equal(t, "in person", DeriveOptionValue("In Person"))
	assert.Equal(t, "phone", DeriveOptionValue("  Phone  "))
	assert.Equal(t, "option 1", DeriveOptionValue("Option 1"))
	assert.Equal(t, "", DeriveOptionValue("   "))
}

func TestDefaultBookingFields(t *testing.T) {
	fields := DefaultBookingFields()

	t.Run("SeedsTheExpectedSet", func(t *testing.T) {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"name", "email", "location", "notes", "guests", "rescheduleReason"}, names)
	})

	t.Run("CoreTrioIsFullySystem", func(t *testing.T) {
		for _, f := range fields[:3] {
			assert.Equal(t, EditabilitySystem, f.Editable, "field %q", f.Name)
		}
		for _, f := range fields[3:] {
			assert.Equal(t, EditabilitySystemButOptional, f.Editable, "field %q", f.Name)
		}
	})

	t.Run("NameAndEmailRequired", func(t *testing.T) {
		assert.True(t, fields[0].Required)
		assert.True(t, fields[1].Required)
	})

	t.Run("RescheduleReasonStartsHidden", func(t *testing.T) {
		last := fields[len(fields)-1]
		assert.Equal(t, "rescheduleReason", last.Name)
		assert.True(t, last.Hidden)
	})

	t.Run("LocationCarriesOptionInputs", func(t *testing.T) {
		location := fields[2]
		assert.Equal(t, FieldTypeRadioInput, location.Type)
		assert.Empty(t, location.Options) // ตัวเลือกจริงผูกตอน render
		assert.Contains(t, location.OptionsInputs, "phone")
		assert.Contains(t, location.OptionsInputs, "attendeeInPerson")
		assert.True(t, location.OptionsInputs["phone"].Required)
	})

	t.Run("EveryFieldRecordsDefaultSource", func(t *testing.T) {
		for _, f := range fields {
			assert.Len(t, f.Sources, 1, "field %q", f.Name)
			assert.Equal(t, FieldSourceTypeDefault, f.Sources[0].Type, "field %q", f.Name)
		}
	})
}
