package pagelens

import "context"

// NotApplicable is the sentinel for metrics that do not apply to the
// document's script (e.g., syllable-based formulas on CJK text).
const NotApplicable = -1

// LengthBucket is one band of a sentence- or paragraph-length distribution.
type LengthBucket struct {
	Label   string  `json:"label"` // e.g. "1-10", "11-20", "21+"
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// LongExample is an over-long sentence or paragraph surfaced for review.
type LongExample struct {
	Text  string `json:"text"`
	Words int    `json:"words"`
}

// ReadabilityReport holds the readability metrics for one document.
type ReadabilityReport struct {
	Language string `json:"language"`
	CJK      bool   `json:"cjk"`

	WordCount     int `json:"wordCount"`
	SentenceCount int `json:"sentenceCount"`
	SyllableCount int `json:"syllableCount"` // NotApplicable for CJK
	ComplexWords  int `json:"complexWords"`  // NotApplicable for CJK

	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`

	// FleschReadingEase is clamped to [0, 100]; NotApplicable for CJK.
	FleschReadingEase float64 `json:"fleschReadingEase"`
	FleschGrade       string  `json:"fleschGrade"`

	// SMOG and ColemanLiau are grade-level estimates; NotApplicable for CJK.
	SMOG        float64 `json:"smog"`
	ColemanLiau float64 `json:"colemanLiau"`

	PassiveVoicePercent float64 `json:"passiveVoicePercent"`
	PassiveVoiceExceeds bool    `json:"passiveVoiceExceeds"`

	TransitionWordPercent float64 `json:"transitionWordPercent"`

	SentenceLengths  []LengthBucket `json:"sentenceLengths"`
	ParagraphLengths []LengthBucket `json:"paragraphLengths"`
	LongSentences    []LongExample  `json:"longSentences"`  // up to 5
	LongParagraphs   []LongExample  `json:"longParagraphs"` // up to 3
}

// ReadabilityScorer computes readability metrics over extracted content.
// Empty content yields a well-formed zero report.
type ReadabilityScorer interface {
	ScoreReadability(ctx context.Context, content *ExtractedContent, language string) (*ReadabilityReport, error)
}
