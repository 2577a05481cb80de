package pagetext_test

import (
	"testing"

	"github.com/fwojciec/pagetext"
	"github.com/stretchr/testify/assert"
)

func TestPageMetadata_Fields(t *testing.T) {
	t.Parallel()

	m := pagetext.PageMetadata{
		Title:       "Ignored",
		Description: "A page",
		Lang:        "en",
		OGImage:     "https://example.com/og.png",
	}

	assert.Equal(t, []pagetext.MetadataField{
		{Label: "Description", Value: "A page"},
		{Label: "Language", Value: "en"},
		{Label: "OG Image", Value: "https://example.com/og.png"},
	}, m.Fields())
}

func TestPageMetadata_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, pagetext.PageMetadata{}.IsEmpty())
	assert.False(t, pagetext.PageMetadata{Charset: "utf-8"}.IsEmpty())
}
