// Package mock provides function-field test doubles for the pagelens
// service interfaces.
package mock

import (
	"context"

	"github.com/pagelens/pagelens"
)

var _ pagelens.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock pagelens.DocumentParser.
type DocumentParser struct {
	ParseFn      func(raw []byte, url string) (*pagelens.Document, error)
	ParseInvoked bool
}

func (m *DocumentParser) Parse(raw []byte, url string) (*pagelens.Document, error) {
	m.ParseInvoked = true
	return m.ParseFn(raw, url)
}

var _ pagelens.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock pagelens.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn      func(ctx context.Context, doc *pagelens.Document) (*pagelens.ExtractedContent, error)
	ExtractContentInvoked bool
}

func (m *ContentExtractor) ExtractContent(ctx context.Context, doc *pagelens.Document) (*pagelens.ExtractedContent, error) {
	m.ExtractContentInvoked = true
	return m.ExtractContentFn(ctx, doc)
}

var _ pagelens.KeywordAnalyzer = (*KeywordAnalyzer)(nil)

// KeywordAnalyzer is a mock pagelens.KeywordAnalyzer.
type KeywordAnalyzer struct {
	AnalyzeKeywordFn      func(ctx context.Context, doc *pagelens.Document, content *pagelens.ExtractedContent, keyword string) (*pagelens.KeywordReport, error)
	AnalyzeKeywordInvoked bool
}

func (m *KeywordAnalyzer) AnalyzeKeyword(ctx context.Context, doc *pagelens.Document, content *pagelens.ExtractedContent, keyword string) (*pagelens.KeywordReport, error) {
	m.AnalyzeKeywordInvoked = true
	return m.AnalyzeKeywordFn(ctx, doc, content, keyword)
}

var _ pagelens.ReadabilityScorer = (*ReadabilityScorer)(nil)

// ReadabilityScorer is a mock pagelens.ReadabilityScorer.
type ReadabilityScorer struct {
	ScoreReadabilityFn      func(ctx context.Context, content *pagelens.ExtractedContent, language string) (*pagelens.ReadabilityReport, error)
	ScoreReadabilityInvoked bool
}

func (m *ReadabilityScorer) ScoreReadability(ctx context.Context, content *pagelens.ExtractedContent, language string) (*pagelens.ReadabilityReport, error) {
	m.ScoreReadabilityInvoked = true
	return m.ScoreReadabilityFn(ctx, content, language)
}

var _ pagelens.IntentClassifier = (*IntentClassifier)(nil)

// IntentClassifier is a mock pagelens.IntentClassifier.
type IntentClassifier struct {
	ClassifyIntentFn      func(ctx context.Context, keyword, postType string, content *pagelens.ExtractedContent, schemas []*pagelens.SchemaEntity) (*pagelens.IntentProfile, error)
	ClassifyIntentInvoked bool
}

func (m *IntentClassifier) ClassifyIntent(ctx context.Context, keyword, postType string, content *pagelens.ExtractedContent, schemas []*pagelens.SchemaEntity) (*pagelens.IntentProfile, error) {
	m.ClassifyIntentInvoked = true
	return m.ClassifyIntentFn(ctx, keyword, postType, content, schemas)
}

var _ pagelens.SchemaExtractor = (*SchemaExtractor)(nil)

// SchemaExtractor is a mock pagelens.SchemaExtractor.
type SchemaExtractor struct {
	ExtractSchemaFn      func(ctx context.Context, doc *pagelens.Document) ([]*pagelens.SchemaEntity, error)
	ExtractSchemaInvoked bool
}

func (m *SchemaExtractor) ExtractSchema(ctx context.Context, doc *pagelens.Document) ([]*pagelens.SchemaEntity, error) {
	m.ExtractSchemaInvoked = true
	return m.ExtractSchemaFn(ctx, doc)
}

var _ pagelens.SchemaValidator = (*SchemaValidator)(nil)

// SchemaValidator is a mock pagelens.SchemaValidator.
type SchemaValidator struct {
	ValidateEntityFn      func(entity *pagelens.SchemaEntity) *pagelens.ValidationResult
	ValidateEntityInvoked bool
}

func (m *SchemaValidator) ValidateEntity(entity *pagelens.SchemaEntity) *pagelens.ValidationResult {
	m.ValidateEntityInvoked = true
	return m.ValidateEntityFn(entity)
}

var _ pagelens.KeywordMapService = (*KeywordMapService)(nil)

// KeywordMapService is a mock pagelens.KeywordMapService.
type KeywordMapService struct {
	SaveEntryFn      func(ctx context.Context, entry *pagelens.KeywordMapEntry) error
	SaveEntryInvoked bool

	FindEntriesFn      func(ctx context.Context, filter pagelens.KeywordMapFilter) ([]*pagelens.KeywordMapEntry, error)
	FindEntriesInvoked bool

	DeleteEntryFn      func(ctx context.Context, documentID string) error
	DeleteEntryInvoked bool
}

func (m *KeywordMapService) SaveEntry(ctx context.Context, entry *pagelens.KeywordMapEntry) error {
	m.SaveEntryInvoked = true
	return m.SaveEntryFn(ctx, entry)
}

func (m *KeywordMapService) FindEntries(ctx context.Context, filter pagelens.KeywordMapFilter) ([]*pagelens.KeywordMapEntry, error) {
	m.FindEntriesInvoked = true
	return m.FindEntriesFn(ctx, filter)
}

func (m *KeywordMapService) DeleteEntry(ctx context.Context, documentID string) error {
	m.DeleteEntryInvoked = true
	return m.DeleteEntryFn(ctx, documentID)
}

var _ pagelens.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock pagelens.Analyzer.
type Analyzer struct {
	AnalyzeFn      func(ctx context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error)
	AnalyzeInvoked bool

	AuditSiteFn      func(ctx context.Context, entries []*pagelens.KeywordMapEntry) (*pagelens.SiteAuditReport, error)
	AuditSiteInvoked bool
}

func (m *Analyzer) Analyze(ctx context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error) {
	m.AnalyzeInvoked = true
	return m.AnalyzeFn(ctx, req)
}

func (m *Analyzer) AuditSite(ctx context.Context, entries []*pagelens.KeywordMapEntry) (*pagelens.SiteAuditReport, error) {
	m.AuditSiteInvoked = true
	return m.AuditSiteFn(ctx, entries)
}
