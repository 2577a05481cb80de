package pagetext

import "context"

// Artifact formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists every export format in artifact order.
var Formats = []string{FormatText, FormatMarkdown, FormatJSON}

// Artifact is one exportable rendering of a result.
type Artifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ArtifactFilename returns the download name for a format and host,
// e.g. "scraped_text_example.com.txt".
func ArtifactFilename(format, host string) string {
	switch format {
	case FormatMarkdown:
		return "scraped_content_" + host + ".md"
	case FormatJSON:
		return "scraped_data_" + host + ".json"
	default:
		return "scraped_text_" + host + ".txt"
	}
}

// BuildArtifact renders the result in one format.
func BuildArtifact(r *Result, format string) (Artifact, error) {
	name := ArtifactFilename(format, r.Host())
	switch format {
	case FormatText:
		return Artifact{Filename: name, ContentType: "text/plain", Content: []byte(RenderText(r))}, nil
	case FormatMarkdown:
		return Artifact{Filename: name, ContentType: "text/markdown", Content: []byte(RenderMarkdown(r))}, nil
	case FormatJSON:
		data, err := RenderJSON(r)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Filename: name, ContentType: "application/json", Content: data}, nil
	default:
		return Artifact{}, Errorf(EINVALID, "unknown export format %q", format)
	}
}

// BuildArtifacts renders the result in the given formats, or in every
// format when none are given.
func BuildArtifacts(r *Result, formats ...string) ([]Artifact, error) {
	if len(formats) == 0 {
		formats = Formats
	}

	artifacts := make([]Artifact, 0, len(formats))
	for _, format := range formats {
		a, err := BuildArtifact(r, format)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// ArtifactStore persists artifacts with atomic semantics.
// Save writes to a temporary location; Commit makes every saved
// artifact visible at once; Abort discards pending artifacts.
type ArtifactStore interface {
	Save(ctx context.Context, a Artifact) error
	Commit() error
	Abort() error
}
