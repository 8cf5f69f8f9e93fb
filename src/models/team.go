package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Team ทีมเจ้าของฟอร์มจองแบบแชร์กัน
// TeamID is the short numeric id clients send in requests.
type Team struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TeamID int                `bson:"teamId" json:"teamId"`
	Name   string             `bson:"name" json:"name"`
	Slug   string             `bson:"slug,omitempty" json:"slug,omitempty"`
}

// Membership เชื่อมผู้ใช้เข้ากับทีม
type Membership struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	TeamID   int                `bson:"teamId" json:"teamId"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Accepted bool               `bson:"accepted" json:"accepted"`
}
