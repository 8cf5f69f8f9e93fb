package formfields

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError คือ error ระดับ integration: schema หรือค่าที่ผูกกับ field
// ผิด invariant ที่ฝั่ง upstream ต้องรับประกัน ไม่ใช่ความผิดของผู้กรอกฟอร์ม
// Rendering the subtree halts; the message is never shown inline on the form.
type SchemaError struct {
	Field  string
	Detail string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "form schema: " + e.Detail
	}
	return fmt.Sprintf("form field %q: %s", e.Field, e.Detail)
}

func schemaErrorf(field, format string, args ...interface{}) error {
	return &SchemaError{Field: field, Detail: fmt.Sprintf(format, args...)}
}

// IsSchemaError reports whether err is an integration-class schema error.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// Editor-level rejections. These map to 4xx responses; the controllers pick
// the status.
var (
	ErrNoOpenDraft       = errors.New("no field draft is open")
	ErrFieldNameTaken    = errors.New("a field with this name already exists")
	ErrFieldNameRequired = errors.New("field name is required")
	ErrUnknownFieldType  = errors.New("unknown field type")
	ErrSystemFieldLocked = errors.New("system fields cannot change type or name")
	ErrSystemFieldDelete = errors.New("system fields cannot be deleted")
	ErrSystemFieldHide   = errors.New("system fields cannot be hidden")
	ErrOptionFloor       = errors.New("a field needs at least two options")
	ErrIndexOutOfRange   = errors.New("field index out of range")
	ErrSwapNotAdjacent   = errors.New("only adjacent fields can be swapped")
)

// FieldError formats a user-facing validation message for the aggregated
// error channel: a bracket-delimited field name prefix followed by the text.
func FieldError(name, message string) string {
	return "[" + name + "]" + message
}

// ParseFieldError splits an aggregated-channel entry back into the field
// name and message. ok=false when the entry carries no field prefix.
func ParseFieldError(entry string) (name, message string, ok bool) {
	if !strings.HasPrefix(entry, "[") {
		return "", "", false
	}
	end := strings.Index(entry, "]")
	if end <= 1 {
		return "", "", false
	}
	return entry[1:end], entry[end+1:], true
}
