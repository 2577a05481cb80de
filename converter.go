package pagetext

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is the cleaned page body from an Extractor.
	Convert(html string) (string, error)
}
