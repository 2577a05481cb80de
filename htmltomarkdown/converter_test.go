package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pagetext.Converter at compile time.
var _ pagetext.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		html string
		want []string
	}{
		{"paragraph", `<p>Hello, world!</p>`, []string{"Hello, world!"}},
		{"headings", `<h1>Title</h1><h2>Subtitle</h2>`, []string{"# Title", "## Subtitle"}},
		{"absolute links", `<p>Visit <a href="https://example.com">Example</a>.</p>`, []string{"[Example](https://example.com)"}},
		{"unordered lists", `<ul><li>First</li><li>Second</li></ul>`, []string{"- First", "- Second"}},
		{"ordered lists", `<ol><li>First</li><li>Second</li></ol>`, []string{"1. First", "2. Second"}},
		{"emphasis", `<p><strong>Bold</strong> and <em>italic</em>.</p>`, []string{"**Bold**", "*italic*"}},
		{"blockquotes", `<blockquote><p>A quote.</p></blockquote>`, []string{"> A quote."}},
		{"tables", `<table>
<thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody><tr><td>Alice</td><td>30</td></tr></tbody>
</table>`, []string{"Name", "Alice", "|", "---"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().Convert(tc.html)

			require.NoError(t, err)
			for _, want := range tc.want {
				assert.Contains(t, md, want)
			}
		})
	}

	t.Run("resolves relative links against domain", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://example.com"))
		md, err := conv.Convert(`<p><a href="/docs/intro">Intro</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Intro](https://example.com/docs/intro)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})

	t.Run("converts a scraped page body", func(t *testing.T) {
		t.Parallel()

		html := `<header><nav><a href="/">Home</a></nav></header>
<main>
<h1>Product</h1>
<p>The best product in the world.</p>
<button id="buy">Buy now</button>
</main>
<footer><p>Copyright 2024</p></footer>`

		md, err := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://shop.example")).Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Home](https://shop.example/)")
		assert.Contains(t, md, "# Product")
		assert.Contains(t, md, "The best product in the world.")
		assert.Contains(t, md, "Buy now")
		assert.Contains(t, md, "Copyright 2024")
	})
}
