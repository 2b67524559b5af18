// Package keyword computes per-keyword usage metrics for one document and
// detects keyword collisions across many documents.
package keyword

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/words"
)

// Ensure Analyzer implements pagelens.KeywordAnalyzer at compile time.
var _ pagelens.KeywordAnalyzer = (*Analyzer)(nil)

// Density and count heuristics.
const (
	densitySevereLow  = 0.1
	densityIdealLow   = 0.5
	densityIdealHigh  = 2.5
	densitySevereHigh = 5.0

	sufficientDensityHigh = 3.0
	sufficientFirstPos    = 30.0
	sufficientSpread      = 0.1

	stuffingThreshold = 0.30
	maxCoTerms        = 10
)

// Analyzer computes keyword metrics. The stop word table is injected so it
// can be swapped per locale.
type Analyzer struct {
	stopWords map[string]struct{}
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStopWords replaces the stop word set used for co-term extraction.
func WithStopWords(set map[string]struct{}) Option {
	return func(a *Analyzer) { a.stopWords = set }
}

// NewAnalyzer creates an Analyzer with the default English stop words.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{stopWords: words.StopWords()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeKeyword computes all per-keyword metrics against the extracted
// content. An empty keyword or empty content yields a well-formed zero
// report so callers can always render one.
func (a *Analyzer) AnalyzeKeyword(_ context.Context, doc *pagelens.Document, content *pagelens.ExtractedContent, keyword string) (*pagelens.KeywordReport, error) {
	kw := pagelens.NormalizeKeyword(keyword)

	report := &pagelens.KeywordReport{
		Keyword:       kw,
		FirstPosition: -1,
		DensityStatus: pagelens.DensitySeverelyUnderused,
		CountStatus:   pagelens.CountInsufficient,
		Naturalness:   pagelens.Naturalness{Natural: true},
		Headings:      pagelens.HeadingPresence{ByLevel: map[int]int{}},
	}
	if content != nil {
		report.FallbackUsed = content.FallbackUsed
		report.Headings.Headings = len(content.Headings())
	}

	var text string
	if content != nil {
		text = content.PlainText()
	}
	report.WordCount = countWords(text)

	if kw == "" || strings.TrimSpace(text) == "" {
		return report, nil
	}

	lower := strings.ToLower(text)
	offsets := findOccurrences(lower, kw)
	report.Occurrences = len(offsets)

	if report.WordCount > 0 && report.Occurrences > 0 {
		report.Density = round2(float64(report.Occurrences) / float64(report.WordCount) * 100)
	}
	if report.Occurrences > 0 {
		report.FirstPosition = round2(float64(offsets[0]) / float64(len(lower)) * 100)
	}
	report.Distribution = distributionScore(offsets, len(lower))
	report.Spread = spread(offsets, len(lower))

	variants := pagelens.KeywordVariants(kw)

	for _, h := range content.Headings() {
		if containsAnyVariant(h.Text, variants) {
			report.Headings.Present = true
			report.Headings.Total++
			report.Headings.ByLevel[h.Level]++
		}
	}
	if paragraphs := content.Paragraphs(); len(paragraphs) > 0 {
		report.InFirstParagraph = containsAnyVariant(paragraphs[0].Text, variants)
	}
	if doc != nil {
		report.InTitle = containsAnyVariant(doc.Title, variants)
		report.InMetaDesc = containsAnyVariant(doc.MetaDescription, variants)
	}

	report.Naturalness = assessNaturalness(text, kw)
	report.CoTerms = a.coOccurringTerms(lower, kw)

	report.DensityStatus = classifyDensity(report.Density, report.Occurrences)
	report.CountStatus = classifyCount(report.Occurrences, report.WordCount)
	report.Sufficient = report.Occurrences > 0 &&
		report.Density >= densityIdealLow && report.Density <= sufficientDensityHigh &&
		report.FirstPosition >= 0 && report.FirstPosition <= sufficientFirstPos &&
		report.Spread > sufficientSpread

	return report, nil
}

// findOccurrences returns the byte offsets of whole-word matches of kw in
// the lowercased text.
func findOccurrences(lower, kw string) []int {
	re, err := keywordPattern(kw)
	if err != nil {
		return nil
	}
	var offsets []int
	for _, loc := range re.FindAllStringIndex(lower, -1) {
		offsets = append(offsets, loc[0])
	}
	return offsets
}

func keywordPattern(kw string) (*regexp.Regexp, error) {
	return regexp.Compile(`\b` + regexp.QuoteMeta(kw) + `\b`)
}

// distributionScore compares actual offsets to an ideal evenly-spaced ladder
// and converts the mean deviation into a 0-10 score, 10 meaning perfectly
// even spacing. A single occurrence scores the midpoint 5.
func distributionScore(offsets []int, textLen int) float64 {
	switch {
	case textLen == 0 || len(offsets) == 0:
		return 0
	case len(offsets) == 1:
		return 5
	}

	n := len(offsets)
	var totalDev float64
	for i, off := range offsets {
		ideal := float64(i+1) * float64(textLen) / float64(n+1)
		totalDev += math.Abs(float64(off) - ideal)
	}
	meanDev := totalDev / float64(n) / float64(textLen)

	score := 10 * (1 - 2*meanDev)
	return round2(math.Min(10, math.Max(0, score)))
}

// spread is the normalized distance between first and last occurrence.
func spread(offsets []int, textLen int) float64 {
	if len(offsets) < 2 || textLen == 0 {
		return 0
	}
	return round2(float64(offsets[len(offsets)-1]-offsets[0]) / float64(textLen))
}

// containsAnyVariant reports whether text contains any keyword variant as a
// whole word, case-insensitively.
func containsAnyVariant(text string, variants []string) bool {
	lower := strings.ToLower(text)
	for _, v := range variants {
		re, err := keywordPattern(v)
		if err != nil {
			continue
		}
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+\s+|[.!?]+$`)

// assessNaturalness measures the ratio of stuffing patterns among
// keyword-bearing sentences: near-duplicate repeats inside one sentence,
// runs of sentences opening with the keyword, and comma-joined repeats.
func assessNaturalness(text, kw string) pagelens.Naturalness {
	re, err := keywordPattern(kw)
	if err != nil {
		return pagelens.Naturalness{Natural: true}
	}

	var keywordSentences, forced int
	prevStartedWithKeyword := false

	for _, raw := range sentenceSplitRe.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		matches := re.FindAllStringIndex(lower, -1)
		if len(matches) == 0 {
			prevStartedWithKeyword = false
			continue
		}
		keywordSentences++

		startsWithKeyword := strings.HasPrefix(lower, kw)
		switch {
		case hasNearDuplicate(lower, matches, kw):
			forced++
		case hasCommaJoinedRepeat(lower, kw):
			forced++
		case startsWithKeyword && prevStartedWithKeyword:
			forced++
		}
		prevStartedWithKeyword = startsWithKeyword
	}

	nat := pagelens.Naturalness{KeywordSentences: keywordSentences, Natural: true}
	if keywordSentences > 0 {
		nat.ForcedRatio = round2(float64(forced) / float64(keywordSentences))
		nat.Natural = nat.ForcedRatio < stuffingThreshold
	}
	return nat
}

// hasNearDuplicate reports two keyword occurrences in one sentence separated
// by fewer than three words.
func hasNearDuplicate(lower string, matches [][]int, kw string) bool {
	for i := 1; i < len(matches); i++ {
		gap := lower[matches[i-1][1]:matches[i][0]]
		if countWords(gap) < 3 {
			return true
		}
	}
	return false
}

// hasCommaJoinedRepeat reports the "kw, kw" stuffing pattern.
func hasCommaJoinedRepeat(lower, kw string) bool {
	re, err := regexp.Compile(regexp.QuoteMeta(kw) + `\s*,\s*` + regexp.QuoteMeta(kw))
	if err != nil {
		return false
	}
	return re.MatchString(lower)
}

// coOccurringTerms returns up to maxCoTerms non-stopword terms ranked by
// frequency, excluding the keyword's own tokens. Ties break alphabetically
// so the result is deterministic.
func (a *Analyzer) coOccurringTerms(lower, kw string) []pagelens.CoTerm {
	kwTokens := map[string]bool{}
	for _, t := range strings.Fields(kw) {
		kwTokens[t] = true
	}

	freq := map[string]int{}
	for _, token := range tokenize(lower) {
		if len(token) < 3 || kwTokens[token] {
			continue
		}
		if _, stop := a.stopWords[token]; stop {
			continue
		}
		freq[token]++
	}

	terms := make([]pagelens.CoTerm, 0, len(freq))
	for term, count := range freq {
		terms = append(terms, pagelens.CoTerm{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > maxCoTerms {
		terms = terms[:maxCoTerms]
	}
	return terms
}

// classifyDensity maps density to its band, escalating to the severe bands
// outside [0.1, 5.0].
func classifyDensity(density float64, occurrences int) pagelens.DensityStatus {
	switch {
	case occurrences == 0 || density < densitySevereLow:
		return pagelens.DensitySeverelyUnderused
	case density < densityIdealLow:
		return pagelens.DensityUnderdensity
	case density <= densityIdealHigh:
		return pagelens.DensityOptimal
	case density <= densitySevereHigh:
		return pagelens.DensityOverdensity
	default:
		return pagelens.DensitySeverelyOverused
	}
}

// classifyCount compares the occurrence count to the 1-per-100-words ideal.
func classifyCount(occurrences, wordCount int) pagelens.CountStatus {
	ideal := float64(wordCount) / 100
	if ideal < 1 {
		ideal = 1
	}
	switch {
	case float64(occurrences) < ideal*0.5:
		return pagelens.CountInsufficient
	case float64(occurrences) > ideal*1.5:
		return pagelens.CountExcessive
	default:
		return pagelens.CountOptimal
	}
}

func countWords(text string) int {
	n := 0
	for _, f := range strings.Fields(text) {
		if strings.IndexFunc(f, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) >= 0 {
			n++
		}
	}
	return n
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
