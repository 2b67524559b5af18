package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/mock"
	pageslog "github.com/pagelens/pagelens/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("logs the analysis with fingerprint and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error) {
				return &pagelens.AnalysisReport{
					ID:          "report-1",
					Fingerprint: "abc123",
					Content:     &pagelens.ExtractedContent{},
				}, nil
			},
		}

		a := pageslog.NewLoggingAnalyzer(inner, logger)
		report, err := a.Analyze(context.Background(), &pagelens.AnalysisRequest{
			HTML:           []byte("<html></html>"),
			URL:            "https://example.com",
			PrimaryKeyword: "drip coffee",
		})

		require.NoError(t, err)
		assert.Equal(t, "report-1", report.ID)
		output := buf.String()
		assert.Contains(t, output, "analyze")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, `keyword="drip coffee"`)
		assert.Contains(t, output, "fingerprint=abc123")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs the error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error) {
				return nil, errors.New("parse failed")
			},
		}

		a := pageslog.NewLoggingAnalyzer(inner, logger)
		_, err := a.Analyze(context.Background(), &pagelens.AnalysisRequest{HTML: []byte("x")})

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="parse failed"`)
	})
}

func TestLoggingAnalyzer_AuditSite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Analyzer{
		AuditSiteFn: func(ctx context.Context, entries []*pagelens.KeywordMapEntry) (*pagelens.SiteAuditReport, error) {
			return &pagelens.SiteAuditReport{Entries: len(entries)}, nil
		},
	}

	a := pageslog.NewLoggingAnalyzer(inner, logger)
	report, err := a.AuditSite(context.Background(), []*pagelens.KeywordMapEntry{
		{DocumentID: "1", PrimaryKeyword: "coffee"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Entries)
	output := buf.String()
	assert.Contains(t, output, "site audit")
	assert.Contains(t, output, "entries=1")
	assert.True(t, inner.AuditSiteInvoked)
}
