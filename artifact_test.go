package pagetext_test

import (
	"testing"
	"time"

	"github.com/fwojciec/pagetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "scraped_text_example.com.txt", pagetext.ArtifactFilename(pagetext.FormatText, "example.com"))
	assert.Equal(t, "scraped_content_example.com.md", pagetext.ArtifactFilename(pagetext.FormatMarkdown, "example.com"))
	assert.Equal(t, "scraped_data_example.com.json", pagetext.ArtifactFilename(pagetext.FormatJSON, "example.com"))
}

func TestBuildArtifacts(t *testing.T) {
	t.Parallel()

	r := &pagetext.Result{
		URL:       "https://example.com/",
		ScrapedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Records:   []pagetext.ElementRecord{{Text: "Hello world", Tag: "p", Length: 11, Position: 1}},
	}

	t.Run("renders every format by default", func(t *testing.T) {
		t.Parallel()

		artifacts, err := pagetext.BuildArtifacts(r)
		require.NoError(t, err)
		require.Len(t, artifacts, 3)

		assert.Equal(t, "scraped_text_example.com.txt", artifacts[0].Filename)
		assert.Equal(t, "text/plain", artifacts[0].ContentType)
		assert.Equal(t, pagetext.RenderText(r), string(artifacts[0].Content))

		assert.Equal(t, "text/markdown", artifacts[1].ContentType)
		assert.Equal(t, pagetext.RenderMarkdown(r), string(artifacts[1].Content))

		assert.Equal(t, "application/json", artifacts[2].ContentType)
		assert.Contains(t, string(artifacts[2].Content), `"Hello world"`)
	})

	t.Run("renders selected formats", func(t *testing.T) {
		t.Parallel()

		artifacts, err := pagetext.BuildArtifacts(r, pagetext.FormatJSON)
		require.NoError(t, err)
		require.Len(t, artifacts, 1)
		assert.Equal(t, "scraped_data_example.com.json", artifacts[0].Filename)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := pagetext.BuildArtifacts(r, "pdf")
		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})
}
