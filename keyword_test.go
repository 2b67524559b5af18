package pagelens_test

import (
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Best Coffee Maker", "best coffee maker"},
		{"collapses whitespace", "  best \t coffee\n maker ", "best coffee maker"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagelens.NormalizeKeyword(tt.input))
		})
	}
}

func TestKeywordVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain noun gains plural", "faucet", []string{"faucet", "faucets"}},
		{"plural loses s", "faucets", []string{"faucets", "faucet"}},
		{"ies to y", "berries", []string{"berries", "berry"}},
		{"y to ies", "berry", []string{"berry", "berries"}},
		{"es suffix", "boxes", []string{"boxes", "box", "boxe"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagelens.KeywordVariants(tt.input))
		})
	}
}

func TestKeywordMapEntry_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid entry", func(t *testing.T) {
		t.Parallel()

		entry := &pagelens.KeywordMapEntry{DocumentID: "1", PrimaryKeyword: "coffee"}
		assert.NoError(t, entry.Validate())
	})

	t.Run("missing document ID", func(t *testing.T) {
		t.Parallel()

		entry := &pagelens.KeywordMapEntry{PrimaryKeyword: "coffee"}
		err := entry.Validate()
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})

	t.Run("blank primary keyword", func(t *testing.T) {
		t.Parallel()

		entry := &pagelens.KeywordMapEntry{DocumentID: "1", PrimaryKeyword: "   "}
		err := entry.Validate()
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})
}
