package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pagelens/pagelens"
	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/pagelens/pagelens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func TestMapAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves the entry", func(t *testing.T) {
		t.Parallel()

		var saved *pagelens.KeywordMapEntry
		keywords := &mock.KeywordMapService{
			SaveEntryFn: func(_ context.Context, entry *pagelens.KeywordMapEntry) error {
				saved = entry
				return nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords

		cmd := &main.MapAddCmd{
			DocumentID: "42",
			Primary:    "best coffee maker",
			Secondary:  []string{"drip coffee maker"},
			Category:   []string{"coffee"},
			Title:      "Best Coffee Makers",
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "42", saved.DocumentID)
		assert.Equal(t, "best coffee maker", saved.PrimaryKeyword)
		assert.Equal(t, []string{"drip coffee maker"}, saved.SecondaryKeywords)
		assert.Contains(t, stdout.String(), "Saved entry for document 42")
		assert.Empty(t, stderr.String())
	})

	t.Run("reports validation errors", func(t *testing.T) {
		t.Parallel()

		keywords := &mock.KeywordMapService{
			SaveEntryFn: func(_ context.Context, entry *pagelens.KeywordMapEntry) error {
				return pagelens.Errorf(pagelens.EINVALID, "keyword map entry primary keyword required")
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords

		cmd := &main.MapAddCmd{DocumentID: "42"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "primary keyword required")
	})
}

func TestMapListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists entries with keywords and categories", func(t *testing.T) {
		t.Parallel()

		keywords := &mock.KeywordMapService{
			FindEntriesFn: func(_ context.Context, filter pagelens.KeywordMapFilter) ([]*pagelens.KeywordMapEntry, error) {
				return []*pagelens.KeywordMapEntry{
					{
						DocumentID:        "1",
						PrimaryKeyword:    "best coffee maker",
						SecondaryKeywords: []string{"drip coffee maker"},
						Categories:        []string{"coffee"},
					},
					{
						DocumentID:     "2",
						PrimaryKeyword: "best tea kettle",
					},
				}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords

		cmd := &main.MapListCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, `1  "best coffee maker"  +drip coffee maker  [coffee]`)
		assert.Contains(t, output, `2  "best tea kettle"`)
	})

	t.Run("passes filters through", func(t *testing.T) {
		t.Parallel()

		var got pagelens.KeywordMapFilter
		keywords := &mock.KeywordMapService{
			FindEntriesFn: func(_ context.Context, filter pagelens.KeywordMapFilter) ([]*pagelens.KeywordMapEntry, error) {
				got = filter
				return nil, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords

		cmd := &main.MapListCmd{Primary: "best coffee maker", Category: "coffee", Limit: 10}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, got.PrimaryKeyword)
		assert.Equal(t, "best coffee maker", *got.PrimaryKeyword)
		require.NotNil(t, got.Category)
		assert.Equal(t, "coffee", *got.Category)
		assert.Equal(t, 10, got.Limit)
		assert.Contains(t, stdout.String(), "No entries found")
	})
}

func TestMapRemoveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("removes the entry", func(t *testing.T) {
		t.Parallel()

		keywords := &mock.KeywordMapService{
			DeleteEntryFn: func(_ context.Context, documentID string) error {
				assert.Equal(t, "42", documentID)
				return nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords

		cmd := &main.MapRemoveCmd{DocumentID: "42"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Removed entry for document 42")
	})

	t.Run("reports missing entries", func(t *testing.T) {
		t.Parallel()

		keywords := &mock.KeywordMapService{
			DeleteEntryFn: func(_ context.Context, documentID string) error {
				return pagelens.Errorf(pagelens.ENOTFOUND, "keyword map entry not found")
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords

		cmd := &main.MapRemoveCmd{DocumentID: "missing"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "not found")
	})
}
