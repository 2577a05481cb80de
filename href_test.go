package pagetext_test

import (
	"testing"

	"github.com/fwojciec/pagetext"
	"github.com/stretchr/testify/assert"
)

func TestResolveHref(t *testing.T) {
	t.Parallel()

	const source = "https://example.com/docs/page"

	tests := []struct {
		name string
		href string
		want string
	}{
		{"root relative", "/x", "https://example.com/x"},
		{"fragment", "#top", "https://example.com/docs/page#top"},
		{"absolute https", "https://other.org/a", "https://other.org/a"},
		{"absolute http", "http://other.org/a", "http://other.org/a"},
		{"mailto", "mailto:hi@example.com", "mailto:hi@example.com"},
		{"tel", "tel:+123", "tel:+123"},
		{"relative resolves against site root", "y/z", "https://example.com/y/z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagetext.ResolveHref(source, tt.href))
		})
	}
}

func TestResolveHref_KeepsPort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://127.0.0.1:8080/next", pagetext.ResolveHref("http://127.0.0.1:8080/", "/next"))
}
