package formfields

import (
	"Backend-Slotify/src/models"
)

// createIndex marks a draft that is not bound to an existing entry.
const createIndex = -1

// Editor ตัวแก้ไขลำดับ field ของฟอร์มหนึ่งใบ ทำงานใน memory ทั้งหมด
// ผู้เรียกเป็นคน persist ผลลัพธ์เอง
//
// The authoring dialog's uncommitted state lives in the draft: AddField and
// EditField open it, SubmitDraft merges it into the collection, CancelDraft
// throws it away. The live collection never sees a partial edit.
type Editor struct {
	fields     []models.FormField
	draft      *models.FormField
	draftIndex int
	open       bool
}

// NewEditor copies fields so editor mutations never leak into the caller's
// slice before persisting.
func NewEditor(fields []models.FormField) *Editor {
	copied := make([]models.FormField, len(fields))
	copy(copied, fields)
	return &Editor{fields: copied, draftIndex: createIndex}
}

// Fields returns the working collection in display order.
func (e *Editor) Fields() []models.FormField {
	return e.fields
}

// Len จำนวน field ทั้งหมดในฟอร์ม
func (e *Editor) Len() int {
	return len(e.fields)
}

// DialogOpen reports whether a draft is currently open.
func (e *Editor) DialogOpen() bool {
	return e.open
}

// Draft returns a copy of the open draft.
func (e *Editor) Draft() (models.FormField, bool) {
	if !e.open || e.draft == nil {
		return models.FormField{}, false
	}
	return *e.draft, true
}

// AddField opens the authoring dialog with a blank draft (create mode).
func (e *Editor) AddField() models.FormField {
	draft := models.FormField{Required: true}
	e.draft = &draft
	e.draftIndex = createIndex
	e.open = true
	return draft
}

// EditField opens the authoring dialog pre-populated from the entry at
// index i (edit mode).
//
// Precondition: i is a valid index.
func (e *Editor) EditField(i int) models.FormField {
	draft := e.fields[i]
	e.draft = &draft
	e.draftIndex = i
	e.open = true
	return draft
}

// CancelDraft discards the open draft without touching the collection.
func (e *Editor) CancelDraft() {
	e.draft = nil
	e.draftIndex = createIndex
	e.open = false
}

// SubmitDraft commits the dialog's final draft. In edit mode the entry at
// the bound index is replaced wholesale; in create mode the draft gets a
// user source stamped, editable defaulted to "user", and is appended.
// The dialog closes in both cases.
func (e *Editor) SubmitDraft(draft models.FormField) error {
	if !e.open {
		return ErrNoOpenDraft
	}
	if draft.Name == "" {
		return ErrFieldNameRequired
	}
	if !draft.Type.IsValid() {
		return ErrUnknownFieldType
	}
	for i, f := range e.fields {
		if f.Name == draft.Name && i != e.draftIndex {
			return ErrFieldNameTaken
		}
	}

	NormalizeOptions(draft.Options)

	if e.draftIndex != createIndex {
		existing := e.fields[e.draftIndex]
		if existing.TypeLocked() && (draft.Type != existing.Type || draft.Name != existing.Name) {
			return ErrSystemFieldLocked
		}
		if existing.IsSystemField() {
			// Editability is monotonic; a system field never escalates to user.
			draft.Editable = existing.Editable
		}
		e.fields[e.draftIndex] = draft
	} else {
		if draft.Editable == "" {
			draft.Editable = models.EditabilityUser
		}
		draft.Sources = []models.FieldSource{{
			ID:            "user",
			Type:          models.FieldSourceTypeUser,
			Label:         "User",
			FieldRequired: draft.Required,
		}}
		e.fields = append(e.fields, draft)
	}

	e.CancelDraft()
	return nil
}

// RemoveField removes the entry at index i.
//
// Precondition: the caller confirmed the field's editability permits
// deletion (CanDelete). This is not re-checked here.
func (e *Editor) RemoveField(i int) {
	e.fields = append(e.fields[:i], e.fields[i+1:]...)
}

// Swap exchanges the entries at i and j. Used for up/down reordering of
// adjacent entries.
//
// Precondition: both indices are in range.
func (e *Editor) Swap(i, j int) {
	e.fields[i], e.fields[j] = e.fields[j], e.fields[i]
}

// ToggleHidden flips the hidden flag of the entry at index i, leaving the
// rest of the entry untouched. Not available for system-tier fields.
func (e *Editor) ToggleHidden(i int) error {
	if i < 0 || i >= len(e.fields) {
		return ErrIndexOutOfRange
	}
	if !e.fields[i].CanToggleHidden() {
		return ErrSystemFieldHide
	}
	e.fields[i].Hidden = !e.fields[i].Hidden
	return nil
}

// DialogConfig computes which controls the authoring dialog enables for the
// field at index i. The type and name selectors lock for system fields and
// the placeholder/options sections follow the field type's registry props.
func DialogConfig(f models.FormField, index int) models.FieldDialogConfig {
	props, _ := models.FieldTypePropsOf(f.Type)
	return models.FieldDialogConfig{
		Field:             f,
		Index:             index,
		TypeEditable:      !f.TypeLocked(),
		NameEditable:      !f.TypeLocked(),
		OffersPlaceholder: props.IsTextType,
		OffersOptions:     props.NeedsOptions,
		CanDelete:         f.CanDelete(),
		CanToggleHidden:   f.CanToggleHidden(),
		PickerTypes:       models.PickerFieldTypes(),
	}
}
