package pagetext

import (
	"fmt"
	"strings"
)

// Ensure MarkdownFormat implements SectionFormat at compile time.
var _ SectionFormat = MarkdownFormat{}

// MarkdownFormat renders sections as Markdown: a level-two heading per
// section, links as bullet items and everything else as block quotes.
type MarkdownFormat struct{}

// SectionHeader renders "## Label" followed by a blank line.
func (MarkdownFormat) SectionHeader(s Section) string {
	return "## " + s.Label + "\n"
}

// Link renders a "- [text](href)" bullet.
func (MarkdownFormat) Link(e Entry) string {
	return "- [" + escapeLinkText(e.DisplayText()) + "](" + e.Href + ")"
}

// Block renders a block quote followed by a blank line, so consecutive
// quotes stay separate.
func (MarkdownFormat) Block(e Entry) string {
	return "> " + e.DisplayText() + "\n"
}

// RenderMarkdown renders the result as a Markdown document: page
// metadata, an interactive elements summary when the page has any,
// and the grouped sections.
func RenderMarkdown(r *Result) string {
	var b strings.Builder
	host := r.Host()

	fmt.Fprintf(&b, "# %s\n\n", documentTitle(r))

	b.WriteString("## Page Metadata\n\n")
	fmt.Fprintf(&b, "- **Source URL:** %s\n", r.URL)
	fmt.Fprintf(&b, "- **Domain:** %s\n", host)
	fmt.Fprintf(&b, "- **Scraped on:** %s\n", r.ScrapedAt.Format(TimestampLayout))
	fmt.Fprintf(&b, "- **Total elements:** %d\n", len(r.Records))
	for _, f := range r.Metadata.Fields() {
		fmt.Fprintf(&b, "- **%s:** %s\n", f.Label, f.Value)
	}
	b.WriteString("\n---\n\n")

	if writeInteractiveSummary(&b, r) {
		b.WriteString("\n---\n\n")
	}

	WriteSections(&b, GroupSections(r.Records, r.URL), MarkdownFormat{})
	return b.String()
}

// writeInteractiveSummary lists buttons, links, forms and inputs with
// their names and kind-specific details. It reports whether anything
// was written.
func writeInteractiveSummary(b *strings.Builder, r *Result) bool {
	var buttons, links, forms, inputs []Entry
	for _, rec := range r.Records {
		e := NewEntry(r.URL, rec)
		switch rec.Kind {
		case KindButton:
			buttons = append(buttons, e)
		case KindAnchor:
			if e.Href != "" {
				links = append(links, e)
			}
		case KindForm:
			forms = append(forms, e)
		case KindInput:
			inputs = append(inputs, e)
		}
	}

	if len(buttons)+len(links)+len(forms)+len(inputs) == 0 {
		return false
	}

	b.WriteString("## Interactive Elements Summary\n")

	if len(buttons) > 0 {
		fmt.Fprintf(b, "\n### Buttons (%d)\n\n", len(buttons))
		for _, e := range buttons {
			btn, _ := e.Record.Button()
			fmt.Fprintf(b, "- **%s**: \"%s\" (Type: %s)\n", e.Name, e.Record.Text, btn.Type)
		}
	}

	if len(links) > 0 {
		fmt.Fprintf(b, "\n### Links (%d)\n\n", len(links))
		for _, e := range links {
			fmt.Fprintf(b, "- **%s**: [%s](%s)\n", e.Name, escapeLinkText(e.DisplayText()), e.Href)
		}
	}

	if len(forms) > 0 {
		fmt.Fprintf(b, "\n### Forms (%d)\n\n", len(forms))
		for _, e := range forms {
			form, _ := e.Record.Form()
			action := e.Href
			if action == "" {
				action = "No action"
			}
			fmt.Fprintf(b, "- **%s**: %s -> %s\n", e.Name, strings.ToUpper(form.Method), action)
		}
	}

	if len(inputs) > 0 {
		fmt.Fprintf(b, "\n### Input Fields (%d)\n\n", len(inputs))
		for _, e := range inputs {
			in, _ := e.Record.Input()
			if in.Placeholder != "" {
				fmt.Fprintf(b, "- **%s**: %s - \"%s\"\n", e.Name, in.Type, in.Placeholder)
			} else {
				fmt.Fprintf(b, "- **%s**: %s\n", e.Name, in.Type)
			}
		}
	}

	return true
}

var linkTextEscaper = strings.NewReplacer(`[`, `\[`, `]`, `\]`)

// escapeLinkText escapes brackets that would end a Markdown link label.
func escapeLinkText(s string) string {
	return linkTextEscaper.Replace(s)
}
