package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles ของผู้ใช้ในระบบ
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User ผู้ใช้งานระบบ (เจ้าของฟอร์ม / แอดมิน)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // ✅ ส่งมาได้จาก frontend, แต่ไม่ส่งกลับ
	Name     string             `bson:"name,omitempty" json:"name"`
	Role     string             `bson:"role" json:"role"`
}

// LoginRequest ข้อมูล login จาก client
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
