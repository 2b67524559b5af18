package pagelens

import "context"

// Intent is a searcher-intent category.
type Intent string

// Intent categories. Commercial investigation is scored internally but
// reported as transactional for backward compatibility with consumers of
// the report.
const (
	IntentInformational Intent = "informational"
	IntentTransactional Intent = "transactional"
	IntentNavigational  Intent = "navigational"
	IntentCommercial    Intent = "commercial"
)

// IntentProfile is the outcome of classifying a keyword and scoring how
// well a document's content satisfies the detected intent.
type IntentProfile struct {
	// Intent is the winning category after the commercial->transactional merge.
	Intent Intent `json:"intent"`

	// Scores holds the raw per-category scores, including commercial.
	Scores map[Intent]float64 `json:"scores"`

	// Markers records which content satisfaction markers were found.
	Markers map[string]bool `json:"markers"`

	// Satisfaction is the weighted satisfaction score in [0, 1].
	Satisfaction float64 `json:"satisfaction"`
}

// IntentClassifier detects searcher intent for a keyword and scores content
// satisfaction against it. An empty keyword defaults to informational with
// zero scores.
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, keyword, postType string, content *ExtractedContent, schemas []*SchemaEntity) (*IntentProfile, error)
}
