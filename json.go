package pagetext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the format of scrape timestamps in every export.
const TimestampLayout = "2006-01-02 15:04:05"

// jsonExport is the document written by RenderJSON.
type jsonExport struct {
	Metadata      PageMetadata    `json:"metadata"`
	URL           string          `json:"url"`
	ScrapedAt     string          `json:"scraped_at"`
	TotalElements int             `json:"total_elements"`
	Elements      []ElementRecord `json:"elements"`
}

// RenderJSON renders the result as pretty-printed JSON with 2-space
// indentation. Non-ASCII and HTML characters are written literally.
// Elements are the record sequence in order, including every populated
// kind-specific field, so DecodeJSON reproduces it exactly.
func RenderJSON(r *Result) ([]byte, error) {
	elements := r.Records
	if elements == nil {
		elements = []ElementRecord{}
	}

	data, err := marshalJSON(jsonExport{
		Metadata:      r.Metadata,
		URL:           r.URL,
		ScrapedAt:     r.ScrapedAt.Format(TimestampLayout),
		TotalElements: len(r.Records),
		Elements:      elements,
	}, "  ")
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a document produced by RenderJSON.
// The timestamp is interpreted in the local time zone.
func DecodeJSON(data []byte) (*Result, error) {
	var doc jsonExport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Errorf(EINVALID, "invalid scrape export: %v", err)
	}

	scrapedAt, err := time.ParseInLocation(TimestampLayout, doc.ScrapedAt, time.Local)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid scraped_at %q", doc.ScrapedAt)
	}

	return &Result{
		URL:       doc.URL,
		Metadata:  doc.Metadata,
		Records:   doc.Elements,
		ScrapedAt: scrapedAt,
	}, nil
}

// marshalJSON encodes v without HTML escaping, indenting when indent is
// non-empty. The trailing newline written by the encoder is removed.
func marshalJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
