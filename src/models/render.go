package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RenderedField ผลการ render field หนึ่งช่อง พร้อมค่าและ error ของช่องนั้น
// Hidden fields stay in the list in a non-displayed state so their bound
// value survives in form state.
type RenderedField struct {
	Name          string                 `json:"name"`
	Type          FieldType              `json:"type"`
	PropsType     PropsType              `json:"propsType"`
	Label         string                 `json:"label,omitempty"`
	ShowLabel     bool                   `json:"showLabel"`
	Placeholder   string                 `json:"placeholder,omitempty"`
	Required      bool                   `json:"required"`
	ReadOnly      bool                   `json:"readOnly"`
	Hidden        bool                   `json:"hidden"`
	Value         interface{}            `json:"value,omitempty"`
	Options       []FieldOption          `json:"options,omitempty"`
	OptionsInputs map[string]OptionInput `json:"optionsInputs,omitempty"`
	Error         string                 `json:"error,omitempty"`
}

// RenderedForm view-model ของฟอร์มทั้งใบ ส่งให้หน้าเว็บไป hydrate ต่อ
type RenderedForm struct {
	FormID      primitive.ObjectID `json:"formId"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	ReadOnly    bool               `json:"readOnly"`
	Fields      []RenderedField    `json:"fields"`
}

// FieldDialogConfig tells the authoring dialog which controls are enabled
// for the field being edited.
type FieldDialogConfig struct {
	Field             FormField   `json:"field"`
	Index             int         `json:"index"`
	TypeEditable      bool        `json:"typeEditable"`
	NameEditable      bool        `json:"nameEditable"`
	OffersPlaceholder bool        `json:"offersPlaceholder"`
	OffersOptions     bool        `json:"offersOptions"`
	CanDelete         bool        `json:"canDelete"`
	CanToggleHidden   bool        `json:"canToggleHidden"`
	PickerTypes       []FieldType `json:"pickerTypes"`
}
