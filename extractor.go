package pagetext

// ExtractOptions controls a single extraction.
type ExtractOptions struct {
	Filter FilterConfig

	// StripScripts removes script, style and noscript subtrees before
	// any selection runs.
	StripScripts bool
}

// ExtractResult holds the structured content extracted from an HTML page.
type ExtractResult struct {
	// Metadata is read from the document head before any stripping.
	Metadata PageMetadata

	// Records are the selected elements in selection order.
	Records []ElementRecord

	// ContentHTML is the inner HTML of the page body after stripping.
	ContentHTML string
}

// Extractor turns raw page bytes into page metadata and element records.
type Extractor interface {
	// Extract parses raw HTML leniently and applies the filter.
	// Malformed markup never produces an error; absent elements and
	// attributes resolve to empty values.
	Extract(raw []byte, opts ExtractOptions) (*ExtractResult, error)
}
