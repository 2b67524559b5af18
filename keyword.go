package pagelens

import (
	"context"
	"strings"
)

// NormalizeKeyword lowercases a keyword and collapses internal whitespace.
// All keyword comparisons in this module operate on normalized keywords.
func NormalizeKeyword(keyword string) string {
	return strings.Join(strings.Fields(strings.ToLower(keyword)), " ")
}

// KeywordVariants returns the normalized keyword plus naive morphological
// variants (plural/singular). The original keyword is always first.
func KeywordVariants(keyword string) []string {
	kw := NormalizeKeyword(keyword)
	if kw == "" {
		return nil
	}

	variants := []string{kw}
	seen := map[string]bool{kw: true}
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	switch {
	case strings.HasSuffix(kw, "ies"):
		add(strings.TrimSuffix(kw, "ies") + "y")
	case strings.HasSuffix(kw, "es"):
		add(strings.TrimSuffix(kw, "es"))
		add(strings.TrimSuffix(kw, "s"))
	case strings.HasSuffix(kw, "s"):
		add(strings.TrimSuffix(kw, "s"))
	case strings.HasSuffix(kw, "y"):
		add(strings.TrimSuffix(kw, "y") + "ies")
	default:
		add(kw + "s")
	}

	return variants
}

// DensityStatus classifies keyword density against the ideal band.
type DensityStatus string

// Density classifications, from too little to too much.
const (
	DensitySeverelyUnderused DensityStatus = "severely_underused"
	DensityUnderdensity      DensityStatus = "underdensity"
	DensityOptimal           DensityStatus = "optimal"
	DensityOverdensity       DensityStatus = "overdensity"
	DensitySeverelyOverused  DensityStatus = "severely_overused"
)

// CountStatus classifies raw occurrence count against a 1-per-100-words heuristic.
type CountStatus string

// Count classifications.
const (
	CountInsufficient CountStatus = "insufficient"
	CountOptimal      CountStatus = "optimal"
	CountExcessive    CountStatus = "excessive"
)

// HeadingPresence reports keyword usage inside headings.
type HeadingPresence struct {
	Present  bool        `json:"present"`
	ByLevel  map[int]int `json:"byLevel"`  // heading level -> occurrence count
	Total    int         `json:"total"`    // headings containing the keyword
	Headings int         `json:"headings"` // all headings inspected
}

// Naturalness reports how forced keyword usage looks.
type Naturalness struct {
	// Natural is true when the forced-usage ratio is below the stuffing
	// threshold (0.30).
	Natural bool `json:"natural"`

	// ForcedRatio is the share of keyword-bearing sentences that match a
	// stuffing pattern.
	ForcedRatio float64 `json:"forcedRatio"`

	// KeywordSentences is the number of sentences containing the keyword.
	KeywordSentences int `json:"keywordSentences"`
}

// CoTerm is a non-stopword term that co-occurs with the keyword, a latent
// semantic indexing candidate.
type CoTerm struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// KeywordReport holds all per-keyword metrics for one document.
type KeywordReport struct {
	Keyword string `json:"keyword"`

	Occurrences   int     `json:"occurrences"`
	WordCount     int     `json:"wordCount"`
	Density       float64 `json:"density"`       // occurrences / wordCount * 100
	FirstPosition float64 `json:"firstPosition"` // percentage into the text, -1 when absent

	// Distribution scores spacing evenness from 0 to 10, where 10 means the
	// occurrences are perfectly evenly spaced.
	Distribution float64 `json:"distribution"`

	// Spread is the normalized distance between first and last occurrence.
	Spread float64 `json:"spread"`

	Headings         HeadingPresence `json:"headings"`
	InFirstParagraph bool            `json:"inFirstParagraph"`
	InTitle          bool            `json:"inTitle"`
	InMetaDesc       bool            `json:"inMetaDescription"`

	Naturalness Naturalness `json:"naturalness"`
	CoTerms     []CoTerm    `json:"coTerms"`

	DensityStatus DensityStatus `json:"densityStatus"`
	CountStatus   CountStatus   `json:"countStatus"`

	// Sufficient is the document-wide flag: the keyword occurs, density is
	// inside [0.5, 3.0], the first occurrence falls within the first 30% of
	// the document, and the spread exceeds 0.1.
	Sufficient bool `json:"sufficient"`

	// FallbackUsed marks results computed from regex-only extraction after a
	// DOM parse failure.
	FallbackUsed bool `json:"fallbackUsed"`
}

// KeywordAnalyzer computes per-keyword metrics for one document.
// An empty keyword or empty content yields a well-formed zero report.
type KeywordAnalyzer interface {
	AnalyzeKeyword(ctx context.Context, doc *Document, content *ExtractedContent, keyword string) (*KeywordReport, error)
}

// KeywordMapEntry is the cross-document unit: the keyword configuration of
// one document in a site, built externally by iterating all documents.
type KeywordMapEntry struct {
	DocumentID        string   `json:"documentId"`
	Title             string   `json:"title"`
	URL               string   `json:"url"`
	PrimaryKeyword    string   `json:"primaryKeyword"`
	SecondaryKeywords []string `json:"secondaryKeywords"`
	Categories        []string `json:"categories"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *KeywordMapEntry) Validate() error {
	if e.DocumentID == "" {
		return Errorf(EINVALID, "keyword map entry document ID required")
	}
	if NormalizeKeyword(e.PrimaryKeyword) == "" {
		return Errorf(EINVALID, "keyword map entry primary keyword required")
	}
	return nil
}

// CannibalizationSeverity grades a cannibalization issue.
type CannibalizationSeverity string

// Severities.
const (
	SeverityHigh   CannibalizationSeverity = "high"
	SeverityMedium CannibalizationSeverity = "medium"
)

// Cannibalization issue types.
const (
	IssuePrimaryConflict = "primary_keyword_conflict"
	IssueKeywordOveruse  = "keyword_overuse"
	IssueSimilarKeywords = "similar_keywords"
)

// CannibalizationIssue describes one keyword collision across documents.
type CannibalizationIssue struct {
	Type       string                  `json:"type"`
	Keyword    string                  `json:"keyword"`
	Keywords   []string                `json:"keywords,omitempty"` // for similar-keyword pairs
	Severity   CannibalizationSeverity `json:"severity"`
	Documents  []KeywordMapEntry       `json:"documents"`
	Similarity float64                 `json:"similarity,omitempty"`
}

// TopicCluster groups documents whose primary keywords target one topic.
type TopicCluster struct {
	Topic     string            `json:"topic"`
	Documents []KeywordMapEntry `json:"documents"`
}

// KeywordMapService persists and lists keyword map entries so site-wide
// analysis can run without re-supplying every document.
type KeywordMapService interface {
	// SaveEntry inserts or replaces the entry for a document.
	SaveEntry(ctx context.Context, entry *KeywordMapEntry) error

	// FindEntries retrieves entries matching the filter.
	FindEntries(ctx context.Context, filter KeywordMapFilter) ([]*KeywordMapEntry, error)

	// DeleteEntry removes the entry for a document.
	// Returns ENOTFOUND if no entry exists.
	DeleteEntry(ctx context.Context, documentID string) error
}

// KeywordMapFilter filters FindEntries.
type KeywordMapFilter struct {
	DocumentID     *string `json:"documentId"`
	PrimaryKeyword *string `json:"primaryKeyword"`
	Category       *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
