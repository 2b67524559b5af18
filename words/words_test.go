package words_test

import (
	"testing"

	"github.com/pagelens/pagelens/words"
	"github.com/stretchr/testify/assert"
)

func TestStopWords(t *testing.T) {
	t.Parallel()

	sw := words.StopWords()

	assert.Contains(t, sw, "the")
	assert.Contains(t, sw, "and")
	assert.NotContains(t, sw, "coffee")
}

func TestStopWords_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := words.StopWords()
	delete(first, "the")

	assert.Contains(t, words.StopWords(), "the")
}

func TestTransitionWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		want string
	}{
		{"en", "however"},
		{"de", "jedoch"},
		{"fr", "cependant"},
		{"xx", "however"}, // unknown falls back to English
		{"", "however"},
	}

	for _, tt := range tests {
		t.Run("lang "+tt.lang, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, words.TransitionWords(tt.lang), tt.want)
		})
	}
}

func TestComplexWordExceptions(t *testing.T) {
	t.Parallel()

	assert.Contains(t, words.ComplexWordExceptions(), "interesting")
}
