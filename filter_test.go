package pagetext_test

import (
	"testing"

	"github.com/fwojciec/pagetext"
	"github.com/stretchr/testify/assert"
)

func TestMatchMode_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode pagetext.MatchMode
		text string
		term string
		want bool
	}{
		{pagetext.MatchContains, "hello world", "lo wo", true},
		{pagetext.MatchContains, "hello world", "bye", false},
		{pagetext.MatchStartsWith, "hello world", "hello", true},
		{pagetext.MatchStartsWith, "hello world", "world", false},
		{pagetext.MatchEndsWith, "hello world", "world", true},
		{pagetext.MatchEndsWith, "hello world", "hello", false},
		{pagetext.MatchExact, "hello", "hello", true},
		{pagetext.MatchExact, "hello world", "hello", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.term, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.mode.Match(tt.text, tt.term))
		})
	}
}

func TestFilterConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts zero value", func(t *testing.T) {
		t.Parallel()
		f := pagetext.FilterConfig{}
		assert.NoError(t, f.Validate())
	})

	t.Run("rejects unknown match mode", func(t *testing.T) {
		t.Parallel()
		f := pagetext.FilterConfig{Match: "fuzzy"}
		err := f.Validate()
		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})

	t.Run("rejects negative minimum length", func(t *testing.T) {
		t.Parallel()
		f := pagetext.FilterConfig{MinLength: -1}
		err := f.Validate()
		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})
}

func TestFilterConfig_Mode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagetext.MatchContains, (&pagetext.FilterConfig{}).Mode())
	assert.Equal(t, pagetext.MatchExact, (&pagetext.FilterConfig{Match: pagetext.MatchExact}).Mode())
}

func TestParseList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"p", "h1", "a"}, pagetext.ParseList(" p, h1 ,,a ,"))
	assert.Nil(t, pagetext.ParseList(""))
	assert.Nil(t, pagetext.ParseList(" , "))
}
