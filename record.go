package pagetext

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the tag-specific attribute payload of a record.
type Kind int

// Record kinds.
const (
	KindOther Kind = iota
	KindAnchor
	KindButton
	KindInput
	KindImage
	KindForm
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAnchor:
		return "anchor"
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindImage:
		return "image"
	case KindForm:
		return "form"
	default:
		return "other"
	}
}

// KindOf maps a lowercase tag name to its record kind.
func KindOf(tag string) Kind {
	switch tag {
	case "a":
		return KindAnchor
	case "button":
		return KindButton
	case "input":
		return KindInput
	case "img":
		return KindImage
	case "form":
		return KindForm
	default:
		return KindOther
	}
}

// Default attribute values applied when the source element omits them.
const (
	DefaultButtonType = "button"
	DefaultInputType  = "text"
	DefaultFormMethod = "get"
)

// Attributes is the kind-specific payload of an ElementRecord.
// Implementations are AnchorAttrs, ButtonAttrs, InputAttrs, ImageAttrs
// and FormAttrs.
type Attributes interface {
	Kind() Kind
}

// AnchorAttrs holds the attributes captured from an <a> element.
type AnchorAttrs struct {
	Href   string `json:"href"`
	Target string `json:"target"`
	Title  string `json:"title"`
	Rel    string `json:"rel"`
}

func (AnchorAttrs) Kind() Kind { return KindAnchor }

// ButtonAttrs holds the attributes captured from a <button> element.
type ButtonAttrs struct {
	Type     string `json:"type"`
	OnClick  string `json:"onclick"`
	Form     string `json:"form"`
	Disabled bool   `json:"disabled"`
}

func (ButtonAttrs) Kind() Kind { return KindButton }

// InputAttrs holds the attributes captured from an <input> element.
type InputAttrs struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
	Required    bool   `json:"required"`
}

func (InputAttrs) Kind() Kind { return KindInput }

// ImageAttrs holds the attributes captured from an <img> element.
type ImageAttrs struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

func (ImageAttrs) Kind() Kind { return KindImage }

// FormAttrs holds the attributes captured from a <form> element.
type FormAttrs struct {
	Action string `json:"action"`
	Method string `json:"method"`
}

func (FormAttrs) Kind() Kind { return KindForm }

// ElementRecord is the normalized, renderer-agnostic representation of
// one selected element.
//
// Text is whitespace-collapsed and trimmed, and Length is its character
// count. Position is the 1-based index of the record in the extracted
// sequence; it never changes when records are re-sorted for display.
// Attrs is nil when Kind is KindOther.
type ElementRecord struct {
	Text     string
	Tag      string
	Length   int
	ID       string
	Position int
	Kind     Kind
	Attrs    Attributes
}

// Name returns the record's id, or the positional fallback "<tag>-<position>"
// when the element has no id.
func (r ElementRecord) Name() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Tag + "-" + strconv.Itoa(r.Position)
}

// Anchor returns the anchor payload, if the record is an anchor.
func (r ElementRecord) Anchor() (AnchorAttrs, bool) {
	a, ok := r.Attrs.(AnchorAttrs)
	return a, ok
}

// Button returns the button payload, if the record is a button.
func (r ElementRecord) Button() (ButtonAttrs, bool) {
	b, ok := r.Attrs.(ButtonAttrs)
	return b, ok
}

// Input returns the input payload, if the record is an input.
func (r ElementRecord) Input() (InputAttrs, bool) {
	in, ok := r.Attrs.(InputAttrs)
	return in, ok
}

// Image returns the image payload, if the record is an image.
func (r ElementRecord) Image() (ImageAttrs, bool) {
	img, ok := r.Attrs.(ImageAttrs)
	return img, ok
}

// Form returns the form payload, if the record is a form.
func (r ElementRecord) Form() (FormAttrs, bool) {
	f, ok := r.Attrs.(FormAttrs)
	return f, ok
}

// IsInteractive reports whether the record is a link, button, input or form.
func (r ElementRecord) IsInteractive() bool {
	switch r.Kind {
	case KindAnchor, KindButton, KindInput, KindForm:
		return true
	}
	return false
}

// recordBase holds the JSON fields shared by every record kind.
type recordBase struct {
	Text     string `json:"text"`
	Tag      string `json:"tag"`
	Length   int    `json:"length"`
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// recordWire is the union of all JSON keys a record may carry.
type recordWire struct {
	recordBase
	Href        string `json:"href"`
	Target      string `json:"target"`
	Title       string `json:"title"`
	Rel         string `json:"rel"`
	Type        string `json:"type"`
	OnClick     string `json:"onclick"`
	Form        string `json:"form"`
	Disabled    bool   `json:"disabled"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
	Required    bool   `json:"required"`
	Src         string `json:"src"`
	Alt         string `json:"alt"`
	Action      string `json:"action"`
	Method      string `json:"method"`
}

// MarshalJSON writes the record as a flat object: the shared fields
// followed by the fields of its kind-specific payload.
func (r ElementRecord) MarshalJSON() ([]byte, error) {
	base := recordBase{
		Text:     r.Text,
		Tag:      r.Tag,
		Length:   r.Length,
		ID:       r.ID,
		Position: r.Position,
	}

	switch a := r.Attrs.(type) {
	case AnchorAttrs:
		return marshalJSON(struct {
			recordBase
			AnchorAttrs
		}{base, a}, "")
	case ButtonAttrs:
		return marshalJSON(struct {
			recordBase
			ButtonAttrs
		}{base, a}, "")
	case InputAttrs:
		return marshalJSON(struct {
			recordBase
			InputAttrs
		}{base, a}, "")
	case ImageAttrs:
		return marshalJSON(struct {
			recordBase
			ImageAttrs
		}{base, a}, "")
	case FormAttrs:
		return marshalJSON(struct {
			recordBase
			FormAttrs
		}{base, a}, "")
	default:
		return marshalJSON(base, "")
	}
}

// UnmarshalJSON reads a flat record object, rebuilding the payload from
// the record's tag.
func (r *ElementRecord) UnmarshalJSON(data []byte) error {
	var w recordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = ElementRecord{
		Text:     w.Text,
		Tag:      w.Tag,
		Length:   w.Length,
		ID:       w.ID,
		Position: w.Position,
		Kind:     KindOf(w.Tag),
	}

	switch r.Kind {
	case KindAnchor:
		r.Attrs = AnchorAttrs{Href: w.Href, Target: w.Target, Title: w.Title, Rel: w.Rel}
	case KindButton:
		r.Attrs = ButtonAttrs{Type: w.Type, OnClick: w.OnClick, Form: w.Form, Disabled: w.Disabled}
	case KindInput:
		r.Attrs = InputAttrs{Type: w.Type, Name: w.Name, Placeholder: w.Placeholder, Value: w.Value, Required: w.Required}
	case KindImage:
		r.Attrs = ImageAttrs{Src: w.Src, Alt: w.Alt}
	case KindForm:
		r.Attrs = FormAttrs{Action: w.Action, Method: w.Method}
	}
	return nil
}
