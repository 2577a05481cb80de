package pagetext

import (
	"fmt"
	"strings"
)

// Ensure TextFormat implements SectionFormat at compile time.
var _ SectionFormat = TextFormat{}

// TextFormat renders sections as plain text lines.
type TextFormat struct{}

// SectionHeader renders "Label:".
func (TextFormat) SectionHeader(s Section) string {
	return s.Label + ":"
}

// Link renders "text -> href".
func (TextFormat) Link(e Entry) string {
	return e.DisplayText() + " -> " + e.Href
}

// Block renders the entry text.
func (TextFormat) Block(e Entry) string {
	return e.DisplayText()
}

// RenderText renders the result as plain text grouped into sections.
func RenderText(r *Result) string {
	var b strings.Builder
	b.WriteString(documentTitle(r))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Source URL: %s\n", r.URL)
	fmt.Fprintf(&b, "Scraped on: %s\n", r.ScrapedAt.Format(TimestampLayout))
	fmt.Fprintf(&b, "Total elements: %d\n\n", len(r.Records))
	WriteSections(&b, GroupSections(r.Records, r.URL), TextFormat{})
	return b.String()
}

// documentTitle returns the page title, falling back to the host.
func documentTitle(r *Result) string {
	if r.Metadata.Title != "" {
		return r.Metadata.Title
	}
	return "Scraped Content from " + r.Host()
}
