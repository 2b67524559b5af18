package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pagelens/pagelens"
	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/pagelens/pagelens/htmltomarkdown"
	"github.com/pagelens/pagelens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHTMLFile(t *testing.T, html string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))
	return path
}

func stubReport() *pagelens.AnalysisReport {
	return &pagelens.AnalysisReport{
		ID:          "report-1",
		Fingerprint: "abc123",
		Document:    &pagelens.Document{Title: "Drip Coffee Guide"},
		Content: &pagelens.ExtractedContent{
			Blocks: []pagelens.ContentBlock{
				{Kind: pagelens.BlockHeading, Level: 1, Text: "Drip Coffee"},
				{Kind: pagelens.BlockParagraph, Text: "A guide."},
			},
		},
		Primary:     &pagelens.KeywordReport{Keyword: "drip coffee", Occurrences: 3, Density: 1.2},
		Readability: &pagelens.ReadabilityReport{Language: "en", WordCount: 250, SentenceCount: 14, FleschReadingEase: 71.3, FleschGrade: "fairly easy"},
		Intent:      &pagelens.IntentProfile{Intent: pagelens.IntentInformational, Satisfaction: 0.85},
	}
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the summary", func(t *testing.T) {
		t.Parallel()

		var gotReq *pagelens.AnalysisRequest
		analyzer := &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error) {
				gotReq = req
				return stubReport(), nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Analyzer = analyzer
		deps.Markdown = htmltomarkdown.NewConverter()

		cmd := &main.AnalyzeCmd{
			File:      writeHTMLFile(t, "<html><body><p>hello</p></body></html>"),
			Keyword:   "drip coffee",
			Secondary: []string{"pour over"},
			PostType:  "post",
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotReq)
		assert.Equal(t, "drip coffee", gotReq.PrimaryKeyword)
		assert.Equal(t, []string{"pour over"}, gotReq.SecondaryKeywords)
		assert.Equal(t, "post", gotReq.PostType)

		output := stdout.String()
		assert.Contains(t, output, "Drip Coffee Guide")
		assert.Contains(t, output, `Keyword "drip coffee"`)
		assert.Contains(t, output, "flesch reading ease: 71.3")
		assert.Contains(t, output, "Intent: informational (satisfaction 85%)")
	})

	t.Run("emits JSON when requested", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error) {
				return stubReport(), nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Analyzer = analyzer

		cmd := &main.AnalyzeCmd{
			File:    writeHTMLFile(t, "<html></html>"),
			Keyword: "drip coffee",
			JSON:    true,
		}
		require.NoError(t, cmd.Run(deps))

		var report pagelens.AnalysisReport
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		assert.Equal(t, "abc123", report.Fingerprint)
	})

	t.Run("dumps extracted content as markdown", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error) {
				return stubReport(), nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Analyzer = analyzer
		deps.Markdown = htmltomarkdown.NewConverter()

		cmd := &main.AnalyzeCmd{
			File:        writeHTMLFile(t, "<html></html>"),
			Keyword:     "drip coffee",
			DumpContent: true,
		}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "# Drip Coffee")
		assert.Contains(t, stdout.String(), "A guide.")
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		cmd := &main.AnalyzeCmd{File: "/nonexistent/page.html", Keyword: "x"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})

	t.Run("surfaces analysis errors", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error) {
				return nil, pagelens.Errorf(pagelens.EUNPROCESSABLE, "failed to parse HTML")
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Analyzer = analyzer

		cmd := &main.AnalyzeCmd{File: writeHTMLFile(t, "<html>"), Keyword: "x"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "failed to parse HTML")
	})
}
