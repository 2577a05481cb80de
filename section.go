package pagetext

import (
	"strings"
)

// sectionOrder is the fixed display order of grouped sections.
// Tags missing from this list get their own section after these.
var sectionOrder = []struct {
	Tag   string
	Label string
}{
	{"button", "Buttons"},
	{"a", "Links"},
	{"form", "Forms"},
	{"input", "Inputs"},
	{"h1", "H1 Headings"},
	{"h2", "H2 Headings"},
	{"h3", "H3 Headings"},
	{"h4", "H4 Headings"},
	{"h5", "H5 Headings"},
	{"h6", "H6 Headings"},
	{"p", "Paragraphs"},
	{"div", "Divisions"},
	{"span", "Spans"},
	{"article", "Articles"},
	{"section", "Sections"},
	{"li", "List Items"},
	{"td", "Table Cells"},
	{"th", "Table Headers"},
	{"label", "Labels"},
	{"nav", "Navigation"},
	{"header", "Page Headers"},
	{"footer", "Footers"},
	{"main", "Main Content"},
}

// Section is a group of records sharing a tag.
type Section struct {
	Tag     string
	Label   string
	Entries []Entry
}

// Entry is one record prepared for display.
type Entry struct {
	Record ElementRecord

	// Name is the record id or its positional fallback name.
	Name string

	// Href is the resolved anchor href or form action.
	// It is empty when the element carries none.
	Href string
}

// NewEntry prepares a record for display, resolving its link target
// against sourceURL.
func NewEntry(sourceURL string, r ElementRecord) Entry {
	e := Entry{Record: r, Name: r.Name()}
	switch a := r.Attrs.(type) {
	case AnchorAttrs:
		if a.Href != "" {
			e.Href = ResolveHref(sourceURL, a.Href)
		}
	case FormAttrs:
		if a.Action != "" {
			e.Href = ResolveHref(sourceURL, a.Action)
		}
	}
	return e
}

// GroupSections groups records by tag into sections in the fixed display
// order. Record order within a section follows the input order.
// Sections without records are omitted.
func GroupSections(records []ElementRecord, sourceURL string) []Section {
	byTag := make(map[string][]Entry)
	var unknown []string
	known := make(map[string]bool, len(sectionOrder))
	for _, s := range sectionOrder {
		known[s.Tag] = true
	}

	for _, r := range records {
		if _, seen := byTag[r.Tag]; !seen && !known[r.Tag] {
			unknown = append(unknown, r.Tag)
		}
		byTag[r.Tag] = append(byTag[r.Tag], NewEntry(sourceURL, r))
	}

	var sections []Section
	for _, s := range sectionOrder {
		if entries := byTag[s.Tag]; len(entries) > 0 {
			sections = append(sections, Section{Tag: s.Tag, Label: s.Label, Entries: entries})
		}
	}
	for _, tag := range unknown {
		sections = append(sections, Section{Tag: tag, Label: strings.ToUpper(tag) + " Elements", Entries: byTag[tag]})
	}
	return sections
}

// SectionFormat renders grouped sections in one output format.
type SectionFormat interface {
	// SectionHeader renders the heading line of a section.
	SectionHeader(s Section) string

	// Link renders an entry that has a resolved Href.
	Link(e Entry) string

	// Block renders any other entry.
	Block(e Entry) string
}

// DisplayText returns the entry text, or its bracketed name when the
// element has no text (e.g. inputs and images).
func (e Entry) DisplayText() string {
	if e.Record.Text != "" {
		return e.Record.Text
	}
	return "[" + e.Name + "]"
}

// WriteSections writes sections using format, one line per entry and
// a blank line between sections. Formats whose entries already end in a
// blank line get no extra separator.
func WriteSections(b *strings.Builder, sections []Section, format SectionFormat) {
	for i, s := range sections {
		if i > 0 && !strings.HasSuffix(b.String(), "\n\n") {
			b.WriteString("\n")
		}
		b.WriteString(format.SectionHeader(s))
		b.WriteString("\n")
		for _, e := range s.Entries {
			if e.Href != "" {
				b.WriteString(format.Link(e))
			} else {
				b.WriteString(format.Block(e))
			}
			b.WriteString("\n")
		}
	}
}
