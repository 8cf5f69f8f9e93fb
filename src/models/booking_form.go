package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingForm ฟอร์มจองหนึ่งฟอร์ม เป็นเจ้าของลำดับ field ทั้งหมด
// Field order in the slice is display order.
type BookingForm struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID     primitive.ObjectID `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	TeamID      *int               `bson:"teamId,omitempty" json:"teamId,omitempty"`
	Fields      []FormField        `bson:"fields,omitempty" json:"fields,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CreateBookingFormRequest รับข้อมูลสร้างฟอร์มจาก client
type CreateBookingFormRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	TeamID      *int   `json:"teamId" validate:"omitempty,min=1"`
}

// UpdateBookingFormRequest แก้ไขได้เฉพาะ title/description
type UpdateBookingFormRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// SwapFieldsRequest สลับตำแหน่ง field สองตัวที่ติดกัน
type SwapFieldsRequest struct {
	Index int `json:"index" validate:"min=0"`
	With  int `json:"with" validate:"min=0"`
}

var defaultSource = FieldSource{
	ID:    "default",
	Type:  FieldSourceTypeDefault,
	Label: "Default",
}

// DefaultBookingFields returns the system-seeded fields every new booking
// form starts with. Attendee name, email and the location choice are fixed;
// the rest can be hidden but never deleted.
func DefaultBookingFields() []FormField {
	return []FormField{
		{
			Name:         "name",
			Type:         FieldTypeName,
			DefaultLabel: "Your name",
			Required:     true,
			Editable:     EditabilitySystem,
			Sources:      []FieldSource{defaultSource},
		},
		{
			Name:         "email",
			Type:         FieldTypeEmail,
			DefaultLabel: "Email address",
			Required:     true,
			Editable:     EditabilitySystem,
			Sources:      []FieldSource{defaultSource},
		},
		{
			// Options mirror the locations configured on the event and are
			// attached at render time. An empty list means the form has a
			// single fixed location and the field renders nothing.
			Name:         "location",
			Type:         FieldTypeRadioInput,
			DefaultLabel: "Location",
			Required:     false,
			Editable:     EditabilitySystem,
			OptionsInputs: map[string]OptionInput{
				"phone": {
					Type:     FieldTypePhone,
					Required: true,
				},
				"attendeeInPerson": {
					Type:     FieldTypeText,
					Required: true,
				},
			},
			Sources: []FieldSource{defaultSource},
		},
		{
			Name:               "notes",
			Type:               FieldTypeTextarea,
			DefaultLabel:       "Additional notes",
			DefaultPlaceholder: "Please share anything that will help prepare for our meeting.",
			Required:           false,
			Editable:           EditabilitySystemButOptional,
			Sources:            []FieldSource{defaultSource},
		},
		{
			Name:         "guests",
			Type:         FieldTypeMultiemail,
			DefaultLabel: "Add guests",
			Required:     false,
			Editable:     EditabilitySystemButOptional,
			Sources:      []FieldSource{defaultSource},
		},
		{
			Name:         "rescheduleReason",
			Type:         FieldTypeTextarea,
			DefaultLabel: "Reason for reschedule",
			Required:     false,
			Hidden:       true,
			Editable:     EditabilitySystemButOptional,
			Sources:      []FieldSource{defaultSource},
		},
	}
}
