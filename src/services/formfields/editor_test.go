package formfields

import (
	"testing"

	"Backend-Slotify/src/models"

	"github.com/stretchr/testify/assert"
)

func seedFields() []models.FormField {
	return []models.FormField{
		{Name: "email", Type: models.FieldTypeEmail, Required: true, Editable: models.EditabilitySystem},
		{Name: "notes", Type: models.FieldTypeTextarea, Editable: models.EditabilitySystemButOptional},
		{Name: "topic", Type: models.FieldTypeText, Editable: models.EditabilityUser},
	}
}

func TestEditorDraftLifecycle(t *testing.T) {
	t.Run("NewEditorCopiesTheInput", func(t *testing.T) {
		original := seedFields()
		e := NewEditor(original)
		e.Fields()[0].Name = "mutated"
		assert.Equal(t, "email", original[0].Name)
	})

	t.Run("AddFieldOpensBlankRequiredDraft", func(t *testing.T) {
		e := NewEditor(nil)
		draft := e.AddField()
		assert.True(t, e.DialogOpen())
		assert.True(t, draft.Required)
		assert.Empty(t, draft.Name)
	})

	t.Run("EditFieldDraftIsACopy", func(t *testing.T) {
		e := NewEditor(seedFields())
		draft := e.EditField(2)
		draft.Label = "changed"
		assert.Empty(t, e.Fields()[2].Label)
	})

	t.Run("CancelDraftDiscardsWithoutTouchingFields", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.EditField(2)
		e.CancelDraft()
		assert.False(t, e.DialogOpen())
		_, ok := e.Draft()
		assert.False(t, ok)
		assert.Len(t, e.Fields(), 3)
	})

	t.Run("SubmitWithoutOpenDraftFails", func(t *testing.T) {
		e := NewEditor(seedFields())
		err := e.SubmitDraft(models.FormField{Name: "x", Type: models.FieldTypeText})
		assert.ErrorIs(t, err, ErrNoOpenDraft)
	})
}

func TestEditorSubmitCreate(t *testing.T) {
	t.Run("AppendsWithUserSourceStamped", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.AddField()
		err := e.SubmitDraft(models.FormField{Name: "company", Type: models.FieldTypeText, Required: true})
		assert.NoError(t, err)
		assert.Len(t, e.Fields(), 4)

		added := e.Fields()[3]
		assert.Equal(t, models.EditabilityUser, added.Editable)
		assert.Len(t, added.Sources, 1)
		assert.Equal(t, models.FieldSourceTypeUser, added.Sources[0].Type)
		assert.True(t, added.Sources[0].FieldRequired)
		assert.False(t, e.DialogOpen())
	})

	t.Run("RejectsEmptyName", func(t *testing.T) {
		e := NewEditor(nil)
		e.AddField()
		err := e.SubmitDraft(models.FormField{Type: models.FieldTypeText})
		assert.ErrorIs(t, err, ErrFieldNameRequired)
	})

	t.Run("RejectsUnknownType", func(t *testing.T) {
		e := NewEditor(nil)
		e.AddField()
		err := e.SubmitDraft(models.FormField{Name: "x", Type: models.FieldType("hologram")})
		assert.ErrorIs(t, err, ErrUnknownFieldType)
	})

	t.Run("RejectsDuplicateName", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.AddField()
		err := e.SubmitDraft(models.FormField{Name: "email", Type: models.FieldTypeText})
		assert.ErrorIs(t, err, ErrFieldNameTaken)
	})

	t.Run("DerivesOptionValuesFromLabels", func(t *testing.T) {
		e := NewEditor(nil)
		e.AddField()
		err := e.SubmitDraft(models.FormField{
			Name: "channel",
			Type: models.FieldTypeSelect,
			Options: []models.FieldOption{
				{Label: "In Person", Value: "stale"},
				{Label: "  Video Call "},
			},
		})
		assert.NoError(t, err)
		opts := e.Fields()[0].Options
		assert.Equal(t, "in person", opts[0].Value)
		assert.Equal(t, "video call", opts[1].Value)
	})
}

func TestEditorSubmitEdit(t *testing.T) {
	t.Run("ReplacesEntryWholesale", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.EditField(2)
		err := e.SubmitDraft(models.FormField{Name: "subject", Type: models.FieldTypeTextarea, Required: true})
		assert.NoError(t, err)
		assert.Equal(t, "subject", e.Fields()[2].Name)
		assert.Equal(t, models.FieldTypeTextarea, e.Fields()[2].Type)
	})

	t.Run("KeepingOwnNameIsNotADuplicate", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.EditField(2)
		err := e.SubmitDraft(models.FormField{Name: "topic", Type: models.FieldTypeText, Label: "Topic"})
		assert.NoError(t, err)
		assert.Equal(t, "Topic", e.Fields()[2].Label)
	})

	t.Run("SystemFieldTypeAndNameAreLocked", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.EditField(0)
		err := e.SubmitDraft(models.FormField{Name: "email", Type: models.FieldTypeText})
		assert.ErrorIs(t, err, ErrSystemFieldLocked)

		e.EditField(0)
		err = e.SubmitDraft(models.FormField{Name: "contact", Type: models.FieldTypeEmail})
		assert.ErrorIs(t, err, ErrSystemFieldLocked)
	})

	t.Run("SystemFieldLabelStaysEditable", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.EditField(0)
		err := e.SubmitDraft(models.FormField{Name: "email", Type: models.FieldTypeEmail, Label: "Work email"})
		assert.NoError(t, err)
		assert.Equal(t, "Work email", e.Fields()[0].Label)
	})

	t.Run("EditabilityNeverEscalates", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.EditField(1)
		err := e.SubmitDraft(models.FormField{
			Name:     "notes",
			Type:     models.FieldTypeTextarea,
			Editable: models.EditabilityUser, // พยายามปลดล็อกตัวเอง
		})
		assert.NoError(t, err)
		assert.Equal(t, models.EditabilitySystemButOptional, e.Fields()[1].Editable)
	})
}

func TestEditorReorderAndRemove(t *testing.T) {
	t.Run("SwapTwiceRestoresTheOrder", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.Swap(1, 2)
		assert.Equal(t, "topic", e.Fields()[1].Name)
		e.Swap(1, 2)
		assert.Equal(t, "notes", e.Fields()[1].Name)
	})

	t.Run("RemoveFieldShrinksInPlace", func(t *testing.T) {
		e := NewEditor(seedFields())
		e.RemoveField(1)
		assert.Len(t, e.Fields(), 2)
		assert.Equal(t, "topic", e.Fields()[1].Name)
	})
}

func TestEditorToggleHidden(t *testing.T) {
	t.Run("OutOfRange", func(t *testing.T) {
		e := NewEditor(seedFields())
		assert.ErrorIs(t, e.ToggleHidden(-1), ErrIndexOutOfRange)
		assert.ErrorIs(t, e.ToggleHidden(3), ErrIndexOutOfRange)
	})

	t.Run("SystemTierCannotHide", func(t *testing.T) {
		e := NewEditor(seedFields())
		assert.ErrorIs(t, e.ToggleHidden(0), ErrSystemFieldHide)
	})

	t.Run("OptionalTierTogglesBothWays", func(t *testing.T) {
		e := NewEditor(seedFields())
		assert.NoError(t, e.ToggleHidden(1))
		assert.True(t, e.Fields()[1].Hidden)
		assert.NoError(t, e.ToggleHidden(1))
		assert.False(t, e.Fields()[1].Hidden)
	})
}

func TestDialogConfig(t *testing.T) {
	t.Run("UserTextField", func(t *testing.T) {
		cfg := DialogConfig(models.FormField{Name: "topic", Type: models.FieldTypeText, Editable: models.EditabilityUser}, 2)
		assert.True(t, cfg.TypeEditable)
		assert.True(t, cfg.NameEditable)
		assert.True(t, cfg.OffersPlaceholder)
		assert.False(t, cfg.OffersOptions)
		assert.True(t, cfg.CanDelete)
		assert.Equal(t, 2, cfg.Index)
	})

	t.Run("SystemSelectLocksIdentity", func(t *testing.T) {
		cfg := DialogConfig(models.FormField{Name: "location", Type: models.FieldTypeRadioInput, Editable: models.EditabilitySystem}, 0)
		assert.False(t, cfg.TypeEditable)
		assert.False(t, cfg.NameEditable)
		assert.True(t, cfg.OffersOptions)
		assert.False(t, cfg.CanDelete)
		assert.False(t, cfg.CanToggleHidden)
	})

	t.Run("PickerNeverOffersSystemOnlyTypes", func(t *testing.T) {
		cfg := DialogConfig(models.FormField{Name: "x", Type: models.FieldTypeText}, -1)
		assert.NotContains(t, cfg.PickerTypes, models.FieldTypeRadioInput)
	})
}
