package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormResponse คำตอบหนึ่งชุดที่ผู้จองส่งเข้ามา
// Responses is keyed by field name, one entry per visible schema field.
type FormResponse struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	FormID    primitive.ObjectID     `bson:"formId" json:"formId"`
	Reference string                 `bson:"reference" json:"reference"`
	Responses map[string]interface{} `bson:"responses" json:"responses"`
	Notified  bool                   `bson:"notified,omitempty" json:"notified,omitempty"`
	CreatedAt time.Time              `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// SubmitResponsesRequest payload ของการส่งคำตอบ
type SubmitResponsesRequest struct {
	Responses map[string]interface{} `json:"responses" validate:"required"`
}
