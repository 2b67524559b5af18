package keyword_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/keyword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Analyzer implements pagelens.KeywordAnalyzer at compile time.
var _ pagelens.KeywordAnalyzer = (*keyword.Analyzer)(nil)

func paragraphContent(paragraphs ...string) *pagelens.ExtractedContent {
	content := &pagelens.ExtractedContent{}
	for _, p := range paragraphs {
		content.Blocks = append(content.Blocks, pagelens.ContentBlock{
			Kind: pagelens.BlockParagraph,
			Text: p,
		})
	}
	return content
}

func analyze(t *testing.T, doc *pagelens.Document, content *pagelens.ExtractedContent, kw string) *pagelens.KeywordReport {
	t.Helper()

	a := keyword.NewAnalyzer()
	report, err := a.AnalyzeKeyword(context.Background(), doc, content, kw)
	require.NoError(t, err)
	return report
}

func TestAnalyzer_FoxScenario(t *testing.T) {
	t.Parallel()

	content := paragraphContent("The quick brown fox jumps. The fox runs fast.")
	report := analyze(t, nil, content, "fox")

	assert.Equal(t, 2, report.Occurrences)
	assert.Equal(t, 9, report.WordCount)
	assert.InDelta(t, 22.22, report.Density, 0.01)
}

func TestAnalyzer_ZeroDensityWhenAbsent(t *testing.T) {
	t.Parallel()

	content := paragraphContent("Nothing relevant here at all.")
	report := analyze(t, nil, content, "fox")

	assert.Zero(t, report.Occurrences)
	assert.Zero(t, report.Density)
	assert.EqualValues(t, -1, report.FirstPosition)
	assert.Equal(t, pagelens.DensitySeverelyUnderused, report.DensityStatus)
	assert.Equal(t, pagelens.CountInsufficient, report.CountStatus)
	assert.False(t, report.Sufficient)
}

func TestAnalyzer_EmptyInputs(t *testing.T) {
	t.Parallel()

	t.Run("empty keyword", func(t *testing.T) {
		t.Parallel()

		report := analyze(t, nil, paragraphContent("Some text."), "")

		assert.Empty(t, report.Keyword)
		assert.Zero(t, report.Occurrences)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		report := analyze(t, nil, &pagelens.ExtractedContent{}, "fox")

		assert.Zero(t, report.WordCount)
		assert.Zero(t, report.Occurrences)
	})

	t.Run("nil content", func(t *testing.T) {
		t.Parallel()

		report := analyze(t, nil, nil, "fox")

		assert.Zero(t, report.Occurrences)
	})
}

func TestAnalyzer_WholeWordMatching(t *testing.T) {
	t.Parallel()

	content := paragraphContent("A foxglove is not a fox at all.")
	report := analyze(t, nil, content, "fox")

	assert.Equal(t, 1, report.Occurrences)
}

func TestAnalyzer_StructuralSignals(t *testing.T) {
	t.Parallel()

	doc := &pagelens.Document{
		Title:           "Best Coffee Maker Reviews",
		MetaDescription: "Find the right coffee maker for your kitchen.",
	}
	content := &pagelens.ExtractedContent{Blocks: []pagelens.ContentBlock{
		{Kind: pagelens.BlockHeading, Level: 1, Text: "Best Coffee Maker"},
		{Kind: pagelens.BlockParagraph, Text: "Choosing a coffee maker is hard."},
		{Kind: pagelens.BlockHeading, Level: 2, Text: "Budget coffee makers"},
		{Kind: pagelens.BlockParagraph, Text: "Cheap models exist."},
	}}

	report := analyze(t, doc, content, "coffee maker")

	assert.True(t, report.InTitle)
	assert.True(t, report.InMetaDesc)
	assert.True(t, report.InFirstParagraph)
	assert.True(t, report.Headings.Present)
	assert.Equal(t, 2, report.Headings.Total) // variant "coffee makers" counts
	assert.Equal(t, 1, report.Headings.ByLevel[1])
	assert.Equal(t, 1, report.Headings.ByLevel[2])
}

func TestAnalyzer_Distribution(t *testing.T) {
	t.Parallel()

	t.Run("even spacing scores high", func(t *testing.T) {
		t.Parallel()

		filler := strings.Repeat("lorem ipsum dolor sit amet ", 4)
		text := filler + "fox " + filler + "fox " + filler + "fox " + filler
		report := analyze(t, nil, paragraphContent(text), "fox")

		assert.Greater(t, report.Distribution, 7.0)
	})

	t.Run("clustered occurrences score low", func(t *testing.T) {
		t.Parallel()

		filler := strings.Repeat("lorem ipsum dolor sit amet ", 12)
		text := "fox stories, fox tales and fox facts. " + filler
		report := analyze(t, nil, paragraphContent(text), "fox")

		assert.Less(t, report.Distribution, 5.0)
	})

	t.Run("single occurrence scores midpoint", func(t *testing.T) {
		t.Parallel()

		report := analyze(t, nil, paragraphContent("Only one fox appears in this sentence here."), "fox")

		assert.InDelta(t, 5.0, report.Distribution, 0.001)
	})
}

func TestAnalyzer_Naturalness(t *testing.T) {
	t.Parallel()

	t.Run("natural prose passes", func(t *testing.T) {
		t.Parallel()

		text := "A fox lives in the forest. It hunts at night across wide territory. " +
			"Researchers once tracked a fox for two years. The study taught us much about these animals."
		report := analyze(t, nil, paragraphContent(text), "fox")

		assert.True(t, report.Naturalness.Natural)
		assert.Equal(t, 2, report.Naturalness.KeywordSentences)
	})

	t.Run("comma-joined and near-duplicate repeats are forced", func(t *testing.T) {
		t.Parallel()

		text := "Buy fox, fox and more fox today. Fox fox everywhere you look."
		report := analyze(t, nil, paragraphContent(text), "fox")

		assert.False(t, report.Naturalness.Natural)
		assert.GreaterOrEqual(t, report.Naturalness.ForcedRatio, 0.3)
	})
}

func TestAnalyzer_CoTerms(t *testing.T) {
	t.Parallel()

	text := "Grinding coffee beans evenly matters. Fresh beans taste better. " +
		"Store beans away from light. A burr grinder crushes beans evenly."
	report := analyze(t, nil, paragraphContent(text), "coffee")

	require.NotEmpty(t, report.CoTerms)
	assert.Equal(t, "beans", report.CoTerms[0].Term)
	assert.Equal(t, 4, report.CoTerms[0].Count)
	assert.LessOrEqual(t, len(report.CoTerms), 10)

	for _, term := range report.CoTerms {
		assert.NotEqual(t, "the", term.Term, "stop words must be excluded")
		assert.NotEqual(t, "coffee", term.Term, "keyword tokens must be excluded")
	}
}

func TestAnalyzer_DensityStatusBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		occurrences int
		fillerWords int
		want        pagelens.DensityStatus
	}{
		{"severely underused", 1, 1200, pagelens.DensitySeverelyUnderused},
		{"underdensity", 1, 300, pagelens.DensityUnderdensity},
		{"optimal", 2, 150, pagelens.DensityOptimal},
		{"overdensity", 4, 100, pagelens.DensityOverdensity},
		{"severely overused", 8, 70, pagelens.DensitySeverelyOverused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			for i := 0; i < tt.occurrences; i++ {
				sb.WriteString("fox ")
			}
			for i := 0; i < tt.fillerWords; i++ {
				sb.WriteString("word ")
			}
			report := analyze(t, nil, paragraphContent(sb.String()), "fox")

			assert.Equal(t, tt.want, report.DensityStatus)
		})
	}
}

func TestAnalyzer_Sufficiency(t *testing.T) {
	t.Parallel()

	// Keyword early, well spread, density inside [0.5, 3.0].
	filler := strings.Repeat("word ", 50)
	text := "The fox appears early. " + filler + " A fox shows up midway. " + filler + " Finally the fox closes."
	report := analyze(t, nil, paragraphContent(text), "fox")

	assert.True(t, report.Sufficient)
	assert.LessOrEqual(t, report.FirstPosition, 30.0)
	assert.Greater(t, report.Spread, 0.1)
}

func TestAnalyzer_FallbackFlagPropagates(t *testing.T) {
	t.Parallel()

	content := paragraphContent("The fox runs.")
	content.FallbackUsed = true

	report := analyze(t, nil, content, "fox")

	assert.True(t, report.FallbackUsed)
}
