// Package analyze composes the individual analyzers into the per-document
// orchestrator and the cross-document site audit.
package analyze

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/goquery"
	"github.com/pagelens/pagelens/intent"
	"github.com/pagelens/pagelens/keyword"
	"github.com/pagelens/pagelens/schema"
	"github.com/pagelens/pagelens/textstat"
)

// Ensure Analyzer implements pagelens.Analyzer.
var _ pagelens.Analyzer = (*Analyzer)(nil)

// reportNamespace is the UUID namespace for report IDs. IDs are derived
// from the request fingerprint, so analyzing the same request twice yields
// byte-identical reports.
var reportNamespace = uuid.MustParse("3c905bd3-41f5-4a42-9a4e-06d5d9b7a8c1")

// CannibalizationDetector is the cross-document detection capability the
// orchestrator consumes for site audits.
type CannibalizationDetector interface {
	DetectIssues(ctx context.Context, entries []*pagelens.KeywordMapEntry) ([]pagelens.CannibalizationIssue, error)
	ClusterByTopic(entries []*pagelens.KeywordMapEntry) []pagelens.TopicCluster
}

// Analyzer runs the full analysis pipeline for one document and the
// cross-document audit over a keyword map. All component fields must be
// set; NewDefault wires the standard implementations.
type Analyzer struct {
	Parser          pagelens.DocumentParser
	Extractor       pagelens.ContentExtractor
	Keywords        pagelens.KeywordAnalyzer
	Readability     pagelens.ReadabilityScorer
	Intents         pagelens.IntentClassifier
	SchemaExtractor pagelens.SchemaExtractor
	SchemaValidator pagelens.SchemaValidator
	Detector        CannibalizationDetector

	// Fallback recovers content blocks when the document cannot be parsed
	// as a DOM. When nil, a parse failure aborts the analysis instead of
	// degrading.
	Fallback func(rawHTML string) *pagelens.ExtractedContent
}

// NewDefault wires an Analyzer from the standard implementations.
func NewDefault() *Analyzer {
	return &Analyzer{
		Parser:          goquery.NewParser(),
		Extractor:       goquery.NewExtractor(),
		Keywords:        keyword.NewAnalyzer(),
		Readability:     textstat.NewScorer(),
		Intents:         intent.NewClassifier(),
		SchemaExtractor: goquery.NewSchemaExtractor(),
		SchemaValidator: schema.NewValidator(),
		Detector:        keyword.NewDetector(),
		Fallback:        goquery.ExtractFallback,
	}
}

// Analyze produces the complete report for one document. The sub-analyzers
// run concurrently over the shared read-only document; any sub-analyzer
// error fails the whole analysis, partial reports are never returned.
func (a *Analyzer) Analyze(ctx context.Context, req *pagelens.AnalysisRequest) (*pagelens.AnalysisReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, content, err := a.buildDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = doc.Language
	}

	// Schema entities feed both the schema report and the intent markers,
	// so extraction happens before the fan-out.
	entities, err := a.SchemaExtractor.ExtractSchema(ctx, doc)
	if err != nil {
		return nil, err
	}

	secondaries := secondarySet(req.PrimaryKeyword, req.SecondaryKeywords)

	fp := fingerprint(req)
	report := &pagelens.AnalysisReport{
		ID:          uuid.NewSHA1(reportNamespace, []byte(fp)).String(),
		Fingerprint: fp,
		Document:    doc,
		Content:     content,
		Secondaries: make([]*pagelens.KeywordReport, len(secondaries)),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		primary, err := a.Keywords.AnalyzeKeyword(gctx, doc, content, req.PrimaryKeyword)
		if err != nil {
			return fmt.Errorf("primary keyword: %w", err)
		}
		report.Primary = primary
		return nil
	})

	for i, kw := range secondaries {
		g.Go(func() error {
			secondary, err := a.Keywords.AnalyzeKeyword(gctx, doc, content, kw)
			if err != nil {
				return fmt.Errorf("secondary keyword %q: %w", kw, err)
			}
			report.Secondaries[i] = secondary
			return nil
		})
	}

	g.Go(func() error {
		readability, err := a.Readability.ScoreReadability(gctx, content, language)
		if err != nil {
			return fmt.Errorf("readability: %w", err)
		}
		report.Readability = readability
		return nil
	})

	g.Go(func() error {
		profile, err := a.Intents.ClassifyIntent(gctx, req.PrimaryKeyword, req.PostType, content, entities)
		if err != nil {
			return fmt.Errorf("intent: %w", err)
		}
		report.Intent = profile
		return nil
	})

	g.Go(func() error {
		schemas := make([]*pagelens.SchemaReport, len(entities))
		for i, entity := range entities {
			schemas[i] = &pagelens.SchemaReport{
				Entity:     entity,
				Validation: a.SchemaValidator.ValidateEntity(entity),
			}
		}
		report.Schemas = schemas
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// buildDocument parses the request HTML and extracts content, degrading to
// regex-only recovery when the DOM cannot be built.
func (a *Analyzer) buildDocument(ctx context.Context, req *pagelens.AnalysisRequest) (*pagelens.Document, *pagelens.ExtractedContent, error) {
	doc, err := a.Parser.Parse(req.HTML, req.URL)
	if err != nil {
		if pagelens.ErrorCode(err) != pagelens.EUNPROCESSABLE || a.Fallback == nil {
			return nil, nil, err
		}
		raw := string(req.HTML)
		doc = &pagelens.Document{
			URL:         req.URL,
			RawHTML:     raw,
			Language:    req.Language,
			ContentHash: hashHex([]byte(raw)),
		}
		return doc, a.Fallback(raw), nil
	}

	content, err := a.Extractor.ExtractContent(ctx, doc)
	if err != nil {
		return nil, nil, err
	}
	return doc, content, nil
}

// AuditSite runs cannibalization detection and topic clustering over the
// supplied keyword map entries.
func (a *Analyzer) AuditSite(ctx context.Context, entries []*pagelens.KeywordMapEntry) (*pagelens.SiteAuditReport, error) {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}

	issues, err := a.Detector.DetectIssues(ctx, entries)
	if err != nil {
		return nil, err
	}

	primaries := make(map[string]struct{})
	all := make(map[string]struct{})
	for _, entry := range entries {
		primary := pagelens.NormalizeKeyword(entry.PrimaryKeyword)
		primaries[primary] = struct{}{}
		all[primary] = struct{}{}
		for _, kw := range entry.SecondaryKeywords {
			if normalized := pagelens.NormalizeKeyword(kw); normalized != "" {
				all[normalized] = struct{}{}
			}
		}
	}

	return &pagelens.SiteAuditReport{
		Entries:        len(entries),
		Issues:         issues,
		Clusters:       a.Detector.ClusterByTopic(entries),
		UniquePrimary:  len(primaries),
		UniqueKeywords: len(all),
	}, nil
}

// secondarySet returns the secondary keywords as an ordered set with the
// primary keyword excluded. Comparison uses the normalized form; the first
// occurrence keeps its original spelling.
func secondarySet(primary string, keywords []string) []string {
	seen := map[string]struct{}{pagelens.NormalizeKeyword(primary): {}}
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		normalized := pagelens.NormalizeKeyword(kw)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// fingerprint hashes everything that determines the report's content. Two
// requests with equal fingerprints produce byte-identical reports.
func fingerprint(req *pagelens.AnalysisRequest) string {
	var b strings.Builder
	b.Write(req.HTML)
	b.WriteByte(0)
	b.WriteString(req.URL)
	b.WriteByte(0)
	b.WriteString(req.PrimaryKeyword)
	b.WriteByte(0)
	b.WriteString(strings.Join(req.SecondaryKeywords, "\x00"))
	b.WriteByte(0)
	b.WriteString(req.Language)
	b.WriteByte(0)
	b.WriteString(req.PostType)
	return hashHex([]byte(b.String()))
}

func hashHex(data []byte) string {
	sum := xxhash.Sum64(data)
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(buf[:])
}
