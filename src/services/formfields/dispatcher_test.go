package formfields

import (
	"testing"

	"Backend-Slotify/src/models"

	"github.com/stretchr/testify/assert"
)

func twoOptions() []models.FieldOption {
	return []models.FieldOption{
		{Label: "Phone", Value: "phone"},
		{Label: "In Person", Value: "in person"},
	}
}

func TestBuildComponentTextShapes(t *testing.T) {
	field := models.FormField{Name: "topic", Type: models.FieldTypeText}

	t.Run("AcceptsString", func(t *testing.T) {
		comp, err := BuildComponent(field, "hello")
		assert.NoError(t, err)
		assert.Equal(t, models.PropsTypeText, comp.PropsType)
		assert.Equal(t, "hello", comp.Value)
	})

	t.Run("NilValueMountsEmpty", func(t *testing.T) {
		comp, err := BuildComponent(field, nil)
		assert.NoError(t, err)
		assert.Nil(t, comp.Value)
	})

	t.Run("NumberIsASchemaError", func(t *testing.T) {
		_, err := BuildComponent(field, 42)
		assert.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})
}

func TestBuildComponentBoolean(t *testing.T) {
	field := models.FormField{Name: "agree", Type: models.FieldTypeBoolean}

	comp, err := BuildComponent(field, true)
	assert.NoError(t, err)
	assert.Equal(t, models.PropsTypeBoolean, comp.PropsType)
	assert.Equal(t, true, comp.Value)

	_, err = BuildComponent(field, "yes")
	assert.True(t, IsSchemaError(err))
}

func TestBuildComponentTextList(t *testing.T) {
	field := models.FormField{Name: "guests", Type: models.FieldTypeMultiemail}

	t.Run("AcceptsStringSlice", func(t *testing.T) {
		comp, err := BuildComponent(field, []string{"a@b.co", "c@d.co"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"a@b.co", "c@d.co"}, comp.Value)
	})

	t.Run("AcceptsDecodedJSONArray", func(t *testing.T) {
		comp, err := BuildComponent(field, []interface{}{"a@b.co"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"a@b.co"}, comp.Value)
	})

	t.Run("MixedArrayIsASchemaError", func(t *testing.T) {
		_, err := BuildComponent(field, []interface{}{"a@b.co", 7})
		assert.True(t, IsSchemaError(err))
	})
}

func TestBuildComponentSelect(t *testing.T) {
	t.Run("CarriesItsOptions", func(t *testing.T) {
		field := models.FormField{Name: "channel", Type: models.FieldTypeSelect, Options: twoOptions()}
		comp, err := BuildComponent(field, "phone")
		assert.NoError(t, err)
		assert.Equal(t, twoOptions(), comp.Options)
		assert.Equal(t, "phone", comp.Value)
	})

	t.Run("NoOptionsIsASchemaError", func(t *testing.T) {
		field := models.FormField{Name: "channel", Type: models.FieldTypeSelect}
		_, err := BuildComponent(field, nil)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("MultiselectWithoutOptionsFailsToo", func(t *testing.T) {
		field := models.FormField{Name: "days", Type: models.FieldTypeCheckbox}
		_, err := BuildComponent(field, nil)
		assert.True(t, IsSchemaError(err))
	})
}

func TestBuildComponentObjectiveWithInput(t *testing.T) {
	inputs := map[string]models.OptionInput{
		"phone": {Type: models.FieldTypePhone, Required: true},
	}

	t.Run("EmptyOptionsRendersNothing", func(t *testing.T) {
		field := models.FormField{Name: "location", Type: models.FieldTypeRadioInput, OptionsInputs: inputs}
		comp, err := BuildComponent(field, nil)
		assert.NoError(t, err)
		assert.Nil(t, comp)
	})

	t.Run("OptionsWithoutInputsIsASchemaError", func(t *testing.T) {
		field := models.FormField{Name: "location", Type: models.FieldTypeRadioInput, Options: twoOptions()}
		_, err := BuildComponent(field, nil)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("AcceptsTypedValue", func(t *testing.T) {
		field := models.FormField{Name: "location", Type: models.FieldTypeRadioInput, Options: twoOptions(), OptionsInputs: inputs}
		comp, err := BuildComponent(field, ObjectiveValue{Value: "+66 81 000 0000", OptionValue: "phone"})
		assert.NoError(t, err)
		assert.Equal(t, ObjectiveValue{Value: "+66 81 000 0000", OptionValue: "phone"}, comp.Value)
	})

	t.Run("AcceptsDecodedJSONObject", func(t *testing.T) {
		field := models.FormField{Name: "location", Type: models.FieldTypeRadioInput, Options: twoOptions(), OptionsInputs: inputs}
		comp, err := BuildComponent(field, map[string]interface{}{"value": "x", "optionValue": "phone"})
		assert.NoError(t, err)
		assert.Equal(t, ObjectiveValue{Value: "x", OptionValue: "phone"}, comp.Value)
	})

	t.Run("WrongShapeIsASchemaError", func(t *testing.T) {
		field := models.FormField{Name: "location", Type: models.FieldTypeRadioInput, Options: twoOptions(), OptionsInputs: inputs}
		_, err := BuildComponent(field, "phone")
		assert.True(t, IsSchemaError(err))
	})
}

func TestBuildComponentUnknownType(t *testing.T) {
	_, err := BuildComponent(models.FormField{Name: "x", Type: models.FieldType("hologram")}, nil)
	assert.True(t, IsSchemaError(err))
}
