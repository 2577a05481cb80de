package pagetext

// PageMetadata holds page-level metadata read from the document head.
// Fields for which the page carries no element are empty.
type PageMetadata struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Keywords      string `json:"keywords"`
	Author        string `json:"author"`
	Canonical     string `json:"canonical"`
	Robots        string `json:"robots"`
	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGImage       string `json:"og_image"`
	Lang          string `json:"lang"`
	Charset       string `json:"charset"`
}

// IsEmpty reports whether no metadata field was found.
func (m PageMetadata) IsEmpty() bool {
	return m == PageMetadata{}
}

// MetadataField is a labelled metadata value, used by renderers.
type MetadataField struct {
	Label string
	Value string
}

// Fields returns the non-empty metadata fields in display order.
// The title is excluded because renderers use it as the document heading.
func (m PageMetadata) Fields() []MetadataField {
	all := []MetadataField{
		{"Description", m.Description},
		{"Keywords", m.Keywords},
		{"Author", m.Author},
		{"Language", m.Lang},
		{"Charset", m.Charset},
		{"Canonical URL", m.Canonical},
		{"Robots", m.Robots},
		{"OG Title", m.OGTitle},
		{"OG Description", m.OGDescription},
		{"OG Image", m.OGImage},
	}

	fields := make([]MetadataField, 0, len(all))
	for _, f := range all {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
