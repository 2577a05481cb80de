package goquery

import (
	"fmt"

	"github.com/fwojciec/pagetext"
)

// Ensure Extractor implements pagetext.Extractor.
var _ pagetext.Extractor = (*Extractor)(nil)

// Extractor turns raw page bytes into metadata and element records.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw, reads the page metadata, optionally strips
// scripts, then selects and extracts records according to opts.Filter.
// Metadata is read before stripping. Malformed markup never fails;
// only an invalid filter does.
func (e *Extractor) Extract(raw []byte, opts pagetext.ExtractOptions) (*pagetext.ExtractResult, error) {
	if err := opts.Filter.Validate(); err != nil {
		return nil, err
	}

	doc := Parse(raw)
	meta := doc.Metadata()
	if opts.StripScripts {
		doc.StripScripts()
	}

	nodes := Select(doc, opts.Filter)
	records := ExtractRecords(nodes, opts.Filter.MinLength)

	content, err := doc.BodyHTML()
	if err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}

	return &pagetext.ExtractResult{
		Metadata:    meta,
		Records:     records,
		ContentHTML: content,
	}, nil
}
