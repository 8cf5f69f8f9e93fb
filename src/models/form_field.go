package models

import "strings"

// FieldEditability ระดับสิทธิ์การแก้ไข field
type FieldEditability string

const (
	// EditabilitySystem - ระบบสร้างให้ ห้ามแก้ชนิด/ชื่อ ห้ามลบ ห้ามซ่อน
	EditabilitySystem FieldEditability = "system"
	// EditabilitySystemButOptional - ระบบสร้างให้ ห้ามแก้ชนิด/ชื่อ ห้ามลบ แต่ซ่อนได้
	EditabilitySystemButOptional FieldEditability = "system-but-optional"
	// EditabilityUser - ผู้ใช้สร้างเอง แก้ไขได้ทั้งหมด
	EditabilityUser FieldEditability = "user"
	// EditabilityUserReadonly - แสดงให้เห็นแต่ผู้กรอกแก้ไขไม่ได้
	EditabilityUserReadonly FieldEditability = "user-readonly"
)

// Source types recorded on a field to note who introduced it.
const (
	FieldSourceTypeUser    = "user"
	FieldSourceTypeDefault = "default"
)

// FieldOption ตัวเลือกของ field แบบ select/radio/checkbox
// Label is the source of truth; Value is always derived from it.
type FieldOption struct {
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
}

// OptionInput an extra input attached to one option of a radioInput field
// (for example a phone input behind the "phone" option).
type OptionInput struct {
	Type        FieldType `bson:"type" json:"type"`
	Required    bool      `bson:"required,omitempty" json:"required,omitempty"`
	Placeholder string    `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// FieldSource บันทึกที่มาของ field (ใครเป็นคนเพิ่ม)
type FieldSource struct {
	ID            string `bson:"id" json:"id"`
	Type          string `bson:"type" json:"type"`
	Label         string `bson:"label" json:"label"`
	FieldRequired bool   `bson:"fieldRequired,omitempty" json:"fieldRequired,omitempty"`
}

// FormField คำอธิบาย field หนึ่งช่องในฟอร์มจอง
// Name doubles as the persisted answer key and must be unique in the form.
// Legacy entries may carry nothing beyond Name and Type.
type FormField struct {
	Name               string                 `bson:"name" json:"name" validate:"required"`
	Type               FieldType              `bson:"type" json:"type" validate:"required"`
	Label              string                 `bson:"label,omitempty" json:"label,omitempty"`
	DefaultLabel       string                 `bson:"defaultLabel,omitempty" json:"defaultLabel,omitempty"`
	Placeholder        string                 `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	DefaultPlaceholder string                 `bson:"defaultPlaceholder,omitempty" json:"defaultPlaceholder,omitempty"`
	Required           bool                   `bson:"required" json:"required"`
	Hidden             bool                   `bson:"hidden" json:"hidden"`
	Editable           FieldEditability       `bson:"editable,omitempty" json:"editable,omitempty"`
	Options            []FieldOption          `bson:"options,omitempty" json:"options,omitempty"`
	OptionsInputs      map[string]OptionInput `bson:"optionsInputs,omitempty" json:"optionsInputs,omitempty"`
	Sources            []FieldSource          `bson:"sources,omitempty" json:"sources,omitempty"`
}

// Editability returns the effective editability class. Entries persisted
// before the editability field existed count as user fields.
func (f FormField) Editability() FieldEditability {
	if f.Editable == "" {
		return EditabilityUser
	}
	return f.Editable
}

// IsSystemField reports whether the field was seeded by the system
// (either protection tier).
func (f FormField) IsSystemField() bool {
	e := f.Editability()
	return e == EditabilitySystem || e == EditabilitySystemButOptional
}

// CanDelete - ลบได้เฉพาะ field ที่ไม่ใช่ของระบบ
func (f FormField) CanDelete() bool {
	return !f.IsSystemField()
}

// CanToggleHidden - ซ่อน/แสดงได้ ยกเว้น field ระดับ system
func (f FormField) CanToggleHidden() bool {
	return f.Editability() != EditabilitySystem
}

// TypeLocked reports whether the field's type and name are immutable.
func (f FormField) TypeLocked() bool {
	return f.IsSystemField()
}

// EffectiveRequired - field ที่ถูกซ่อนไม่บังคับกรอก
func (f FormField) EffectiveRequired() bool {
	return f.Required && !f.Hidden
}

// DisplayLabel picks the label shown to the person filling the form.
func (f FormField) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	if f.DefaultLabel != "" {
		return f.DefaultLabel
	}
	return f.Name
}

// DisplayPlaceholder picks the placeholder shown inside text inputs.
func (f FormField) DisplayPlaceholder() string {
	if f.Placeholder != "" {
		return f.Placeholder
	}
	return f.DefaultPlaceholder
}

// DeriveOptionValue derives an option's stored value from its label:
// the lower-cased, trimmed label. The label is the source of truth.
func DeriveOptionValue(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
