package pagelens

import "context"

// AnalysisRequest carries everything the orchestrator needs to analyze one
// document. HTML and keywords are supplied by the caller; the engine never
// performs network I/O.
type AnalysisRequest struct {
	HTML              []byte   `json:"-"`
	URL               string   `json:"url"`
	PrimaryKeyword    string   `json:"primaryKeyword"`
	SecondaryKeywords []string `json:"secondaryKeywords"`
	Language          string   `json:"language"`
	PostType          string   `json:"postType"`
}

// Validate returns an error if the request cannot be analyzed at all.
func (r *AnalysisRequest) Validate() error {
	if len(r.HTML) == 0 {
		return Errorf(EINVALID, "analysis request HTML required")
	}
	return nil
}

// SchemaReport pairs one extracted entity with its validation result.
type SchemaReport struct {
	Entity     *SchemaEntity     `json:"entity"`
	Validation *ValidationResult `json:"validation"`
}

// AnalysisReport is the complete per-document report. Aside from the ID,
// it is a pure function of the request: analyzing identical input twice
// yields an identical Fingerprint and identical sub-reports.
type AnalysisReport struct {
	ID          string `json:"id"`
	Fingerprint string `json:"fingerprint"`

	Document *Document         `json:"document"`
	Content  *ExtractedContent `json:"content"`

	Primary     *KeywordReport   `json:"primary"`
	Secondaries []*KeywordReport `json:"secondaries"`

	Readability *ReadabilityReport `json:"readability"`
	Intent      *IntentProfile     `json:"intent"`
	Schemas     []*SchemaReport    `json:"schemas"`
}

// SiteAuditReport is the outcome of cross-document analysis over a keyword map.
type SiteAuditReport struct {
	Entries        int                    `json:"entries"`
	Issues         []CannibalizationIssue `json:"issues"`
	Clusters       []TopicCluster         `json:"clusters"`
	UniquePrimary  int                    `json:"uniquePrimaryKeywords"`
	UniqueKeywords int                    `json:"uniqueKeywords"`
}

// Analyzer is the orchestrator: it composes the analyzers into a single
// report per document and runs cross-document audits over a keyword map.
type Analyzer interface {
	// Analyze produces a complete report or an error for the whole
	// document; partial results are never emitted.
	Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisReport, error)

	// AuditSite detects keyword cannibalization and topic clusters across
	// the supplied keyword map entries.
	AuditSite(ctx context.Context, entries []*KeywordMapEntry) (*SiteAuditReport, error)
}
