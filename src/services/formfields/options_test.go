package formfields

import (
	"testing"

	"Backend-Slotify/src/models"

	"github.com/stretchr/testify/assert"
)

func TestOptionEditing(t *testing.T) {
	t.Run("DefaultsSeedTwoOptions", func(t *testing.T) {
		opts := DefaultOptions()
		assert.Len(t, opts, 2)
		assert.Equal(t, "option 1", opts[0].Value)
	})

	t.Run("AddOptionNumbersItself", func(t *testing.T) {
		opts := AddOption(DefaultOptions())
		assert.Len(t, opts, 3)
		assert.Equal(t, "Option 3", opts[2].Label)
		assert.Equal(t, "option 3", opts[2].Value)
	})

	t.Run("RemoveRespectsTheFloor", func(t *testing.T) {
		opts := DefaultOptions()
		_, err := RemoveOption(opts, 0)
		assert.ErrorIs(t, err, ErrOptionFloor)

		opts = AddOption(opts)
		opts, err = RemoveOption(opts, 1)
		assert.NoError(t, err)
		assert.Len(t, opts, 2)
	})

	t.Run("RemoveOutOfRange", func(t *testing.T) {
		_, err := RemoveOption(DefaultOptions(), 5)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("LabelIsTheSourceOfTruth", func(t *testing.T) {
		opts := DefaultOptions()
		err := SetOptionLabel(opts, 0, "  Video Call ")
		assert.NoError(t, err)
		assert.Equal(t, "  Video Call ", opts[0].Label)
		assert.Equal(t, "video call", opts[0].Value)
	})

	t.Run("NormalizeRealignsEveryValue", func(t *testing.T) {
		opts := []models.FieldOption{
			{Label: "Phone", Value: "stale"},
			{Label: "In Person", Value: ""},
		}
		NormalizeOptions(opts)
		assert.Equal(t, "phone", opts[0].Value)
		assert.Equal(t, "in person", opts[1].Value)
	})
}
