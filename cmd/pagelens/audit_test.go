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

func TestAuditCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints issues and clusters", func(t *testing.T) {
		t.Parallel()

		entries := []*pagelens.KeywordMapEntry{
			{DocumentID: "1", Title: "Makers 2025", PrimaryKeyword: "best coffee maker"},
			{DocumentID: "2", Title: "Buying Guide", PrimaryKeyword: "best coffee maker"},
		}
		keywords := &mock.KeywordMapService{
			FindEntriesFn: func(_ context.Context, filter pagelens.KeywordMapFilter) ([]*pagelens.KeywordMapEntry, error) {
				return entries, nil
			},
		}
		analyzer := &mock.Analyzer{
			AuditSiteFn: func(_ context.Context, got []*pagelens.KeywordMapEntry) (*pagelens.SiteAuditReport, error) {
				assert.Len(t, got, 2)
				return &pagelens.SiteAuditReport{
					Entries:       2,
					UniquePrimary: 1,
					Issues: []pagelens.CannibalizationIssue{
						{
							Type:      pagelens.IssuePrimaryConflict,
							Keyword:   "best coffee maker",
							Severity:  pagelens.SeverityHigh,
							Documents: []pagelens.KeywordMapEntry{*entries[0], *entries[1]},
						},
					},
					Clusters: []pagelens.TopicCluster{
						{Topic: "best coffee maker", Documents: []pagelens.KeywordMapEntry{*entries[0], *entries[1]}},
					},
				}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords
		deps.Analyzer = analyzer

		cmd := &main.AuditCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Audited 2 documents")
		assert.Contains(t, output, `[high] primary_keyword_conflict: "best coffee maker" used by 2 documents`)
		assert.Contains(t, output, "1  Makers 2025")
		assert.Contains(t, output, `cluster "best coffee maker": documents 1, 2`)
	})

	t.Run("reports similar keyword pairs", func(t *testing.T) {
		t.Parallel()

		keywords := &mock.KeywordMapService{
			FindEntriesFn: func(_ context.Context, filter pagelens.KeywordMapFilter) ([]*pagelens.KeywordMapEntry, error) {
				return []*pagelens.KeywordMapEntry{{DocumentID: "1", PrimaryKeyword: "x"}}, nil
			},
		}
		analyzer := &mock.Analyzer{
			AuditSiteFn: func(_ context.Context, _ []*pagelens.KeywordMapEntry) (*pagelens.SiteAuditReport, error) {
				return &pagelens.SiteAuditReport{
					Entries: 1,
					Issues: []pagelens.CannibalizationIssue{
						{
							Type:       pagelens.IssueSimilarKeywords,
							Keywords:   []string{"best coffee maker", "best coffee makers"},
							Severity:   pagelens.SeverityMedium,
							Similarity: 88,
						},
					},
				}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords
		deps.Analyzer = analyzer

		cmd := &main.AuditCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), `"best coffee maker" and "best coffee makers" (similarity 88)`)
	})

	t.Run("empty keyword map short-circuits", func(t *testing.T) {
		t.Parallel()

		keywords := &mock.KeywordMapService{
			FindEntriesFn: func(_ context.Context, filter pagelens.KeywordMapFilter) ([]*pagelens.KeywordMapEntry, error) {
				return nil, nil
			},
		}
		analyzer := &mock.Analyzer{}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Keywords = keywords
		deps.Analyzer = analyzer

		cmd := &main.AuditCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Keyword map is empty")
		assert.False(t, analyzer.AuditSiteInvoked)
	})
}
