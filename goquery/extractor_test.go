package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("button and link scenario", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`<html><head><title>Demo</title></head><body>
<button id="go">Go</button>
<a href="/next">Next</a>
</body></html>`)

		result, err := goquery.NewExtractor().Extract(raw, pagetext.ExtractOptions{
			Filter: pagetext.FilterConfig{Tags: []string{"button", "a"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "Demo", result.Metadata.Title)
		require.Len(t, result.Records, 2)

		assert.Equal(t, "Go", result.Records[0].Text)
		assert.Equal(t, "go", result.Records[0].Name())
		b, ok := result.Records[0].Button()
		require.True(t, ok)
		assert.Equal(t, "button", b.Type)

		assert.Equal(t, "Next", result.Records[1].Text)
		assert.Equal(t, "a-2", result.Records[1].Name())
		a, ok := result.Records[1].Anchor()
		require.True(t, ok)
		assert.Equal(t, "/next", a.Href)
	})

	t.Run("min length ten drops short records", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`<body><button id="go">Go</button><a href="/next">Next</a></body>`)

		result, err := goquery.NewExtractor().Extract(raw, pagetext.ExtractOptions{
			Filter: pagetext.FilterConfig{Tags: []string{"button", "a"}, MinLength: 10},
		})

		require.NoError(t, err)
		assert.Empty(t, result.Records)
	})

	t.Run("metadata is read before stripping", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`<html><head><title>Kept</title><script>var a;</script></head>
<body><div>text<script>hidden()</script></div></body></html>`)

		result, err := goquery.NewExtractor().Extract(raw, pagetext.ExtractOptions{
			Filter:       pagetext.FilterConfig{Tags: []string{"div"}},
			StripScripts: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Kept", result.Metadata.Title)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "text", result.Records[0].Text)
		assert.NotContains(t, result.ContentHTML, "hidden()")
	})

	t.Run("keeps scripts when not stripping", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`<body><div>text<script>shown()</script></div></body>`)

		result, err := goquery.NewExtractor().Extract(raw, pagetext.ExtractOptions{
			Filter: pagetext.FilterConfig{Tags: []string{"div"}},
		})

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "textshown()", result.Records[0].Text)
	})

	t.Run("invalid filter", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract([]byte(`<p>x</p>`), pagetext.ExtractOptions{
			Filter: pagetext.FilterConfig{Match: "fuzzy"},
		})

		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})
}
