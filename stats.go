package pagetext

import (
	"cmp"
	"slices"
)

// Summary holds aggregate statistics over a record list.
type Summary struct {
	TotalElements       int
	InteractiveElements int
	TotalCharacters     int
	AverageLength       float64
}

// Summarize computes aggregate statistics for records.
func Summarize(records []ElementRecord) Summary {
	var s Summary
	s.TotalElements = len(records)
	for _, r := range records {
		s.TotalCharacters += r.Length
		if r.IsInteractive() {
			s.InteractiveElements++
		}
	}
	if s.TotalElements > 0 {
		s.AverageLength = float64(s.TotalCharacters) / float64(s.TotalElements)
	}
	return s
}

// TagCount is one bucket of a tag histogram.
type TagCount struct {
	Tag   string
	Count int
}

// Inventory is a read-only debugging view of a record list.
type Inventory struct {
	// WithIDs are the records carrying an id attribute.
	WithIDs []ElementRecord

	// Interactive are the link, button, input and form records.
	Interactive []ElementRecord

	// Tags is the tag frequency histogram, most frequent first,
	// ties ordered by tag name.
	Tags []TagCount
}

// NewInventory builds the debugging inventory for records.
func NewInventory(records []ElementRecord) Inventory {
	var inv Inventory
	counts := make(map[string]int)
	for _, r := range records {
		if r.ID != "" {
			inv.WithIDs = append(inv.WithIDs, r)
		}
		if r.IsInteractive() {
			inv.Interactive = append(inv.Interactive, r)
		}
		counts[r.Tag]++
	}

	for tag, n := range counts {
		inv.Tags = append(inv.Tags, TagCount{Tag: tag, Count: n})
	}
	slices.SortFunc(inv.Tags, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	return inv
}

// Detail returns the kind-specific detail shown next to an interactive
// record: the href of a link, the type of a button or input, or the
// method of a form.
func (r ElementRecord) Detail() string {
	switch a := r.Attrs.(type) {
	case AnchorAttrs:
		return a.Href
	case ButtonAttrs:
		return a.Type
	case InputAttrs:
		return a.Type
	case FormAttrs:
		return a.Method
	}
	return ""
}
