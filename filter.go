package pagetext

import "strings"

// MatchMode controls how search terms are matched against element text.
type MatchMode string

// Supported match modes.
const (
	MatchContains   MatchMode = "contains"
	MatchStartsWith MatchMode = "starts_with"
	MatchEndsWith   MatchMode = "ends_with"
	MatchExact      MatchMode = "exact"
)

// Valid reports whether m is a known match mode.
func (m MatchMode) Valid() bool {
	switch m {
	case MatchContains, MatchStartsWith, MatchEndsWith, MatchExact:
		return true
	}
	return false
}

// Match reports whether text matches term under m.
// Both arguments are expected to be lower-cased by the caller.
func (m MatchMode) Match(text, term string) bool {
	switch m {
	case MatchStartsWith:
		return strings.HasPrefix(text, term)
	case MatchEndsWith:
		return strings.HasSuffix(text, term)
	case MatchExact:
		return text == term
	default:
		return strings.Contains(text, term)
	}
}

// DefaultTags is the tag set selected when neither a tag nor an id
// filter is given. Selection concatenates matches in this order.
var DefaultTags = []string{
	"p", "h1", "h2", "h3", "h4", "h5", "h6",
	"div", "span", "article", "section",
	"a", "button", "input", "form",
	"li", "td", "th", "label",
	"nav", "header", "footer", "main",
}

// FilterConfig is a single scrape's filter request.
//
// Tags and IDs have OR semantics and their matches are concatenated,
// tags first. Terms are applied afterwards to the selected set using
// Match. Records whose text is shorter than MinLength are dropped.
type FilterConfig struct {
	Tags      []string  `json:"tags,omitempty"`
	IDs       []string  `json:"ids,omitempty"`
	Terms     []string  `json:"terms,omitempty"`
	Match     MatchMode `json:"match,omitempty"`
	MinLength int       `json:"minLength"`
}

// Validate returns an error if the filter contains invalid fields.
func (f *FilterConfig) Validate() error {
	if f.Match != "" && !f.Match.Valid() {
		return Errorf(EINVALID, "unknown match mode %q", f.Match)
	}
	if f.MinLength < 0 {
		return Errorf(EINVALID, "minimum length must not be negative")
	}
	return nil
}

// Mode returns the configured match mode, defaulting to contains.
func (f *FilterConfig) Mode() MatchMode {
	if f.Match == "" {
		return MatchContains
	}
	return f.Match
}

// ParseList splits a comma-separated list, trimming whitespace and
// dropping empty items.
func ParseList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
