package keyword

import (
	"context"
	"sort"

	"github.com/pagelens/pagelens"
	"golang.org/x/sync/errgroup"
)

// DefaultSimilarityThreshold flags primary keyword pairs as competing when
// their similarity reaches this score.
const DefaultSimilarityThreshold = 70.0

// overuseLimit is the number of documents that may share one keyword before
// it counts as overused.
const overuseLimit = 2

// Detector finds keyword collisions across the documents of a site.
type Detector struct {
	threshold   float64
	concurrency int
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithSimilarityThreshold overrides the similar-keyword threshold.
func WithSimilarityThreshold(threshold float64) DetectorOption {
	return func(d *Detector) { d.threshold = threshold }
}

// WithConcurrency sets the number of workers for pairwise comparison.
func WithConcurrency(n int) DetectorOption {
	return func(d *Detector) { d.concurrency = n }
}

// NewDetector creates a Detector with the default threshold.
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{threshold: DefaultSimilarityThreshold, concurrency: 4}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectIssues flags (a) duplicate primary keywords, (b) any keyword used by
// more than two documents, and (c) pairs of distinct primary keywords whose
// similarity reaches the threshold. Results are deterministic for a given
// entry order.
func (d *Detector) DetectIssues(ctx context.Context, entries []*pagelens.KeywordMapEntry) ([]pagelens.CannibalizationIssue, error) {
	var issues []pagelens.CannibalizationIssue

	issues = append(issues, duplicatePrimaries(entries)...)
	issues = append(issues, overusedKeywords(entries)...)

	similar, err := d.similarPrimaries(ctx, entries)
	if err != nil {
		return nil, err
	}
	issues = append(issues, similar...)

	return issues, nil
}

// duplicatePrimaries flags more than one document sharing the same
// normalized primary keyword. Severity high.
func duplicatePrimaries(entries []*pagelens.KeywordMapEntry) []pagelens.CannibalizationIssue {
	groups := map[string][]pagelens.KeywordMapEntry{}
	var order []string
	for _, e := range entries {
		kw := pagelens.NormalizeKeyword(e.PrimaryKeyword)
		if kw == "" {
			continue
		}
		if _, seen := groups[kw]; !seen {
			order = append(order, kw)
		}
		groups[kw] = append(groups[kw], *e)
	}

	var issues []pagelens.CannibalizationIssue
	for _, kw := range order {
		docs := groups[kw]
		if len(docs) > 1 {
			issues = append(issues, pagelens.CannibalizationIssue{
				Type:      pagelens.IssuePrimaryConflict,
				Keyword:   kw,
				Severity:  pagelens.SeverityHigh,
				Documents: docs,
			})
		}
	}
	return issues
}

// overusedKeywords flags any keyword, primary or secondary, used by more
// than two documents. Severity medium. Documents sharing a primary keyword
// are already covered by the high-severity conflict, so those keywords are
// only reported here when secondaries push usage past the limit.
func overusedKeywords(entries []*pagelens.KeywordMapEntry) []pagelens.CannibalizationIssue {
	usage := map[string][]pagelens.KeywordMapEntry{}
	var order []string

	record := func(kw string, e *pagelens.KeywordMapEntry) {
		kw = pagelens.NormalizeKeyword(kw)
		if kw == "" {
			return
		}
		docs := usage[kw]
		for _, d := range docs {
			if d.DocumentID == e.DocumentID {
				return
			}
		}
		if docs == nil {
			order = append(order, kw)
		}
		usage[kw] = append(docs, *e)
	}

	for _, e := range entries {
		record(e.PrimaryKeyword, e)
		for _, kw := range e.SecondaryKeywords {
			record(kw, e)
		}
	}

	var issues []pagelens.CannibalizationIssue
	for _, kw := range order {
		if docs := usage[kw]; len(docs) > overuseLimit {
			issues = append(issues, pagelens.CannibalizationIssue{
				Type:      pagelens.IssueKeywordOveruse,
				Keyword:   kw,
				Severity:  pagelens.SeverityMedium,
				Documents: docs,
			})
		}
	}
	return issues
}

// similarPrimaries compares every pair of distinct primary keywords. Pair
// comparisons are independent, so they fan out across workers.
func (d *Detector) similarPrimaries(ctx context.Context, entries []*pagelens.KeywordMapEntry) ([]pagelens.CannibalizationIssue, error) {
	// One representative entry per distinct normalized primary keyword.
	var keywords []string
	byKeyword := map[string][]pagelens.KeywordMapEntry{}
	for _, e := range entries {
		kw := pagelens.NormalizeKeyword(e.PrimaryKeyword)
		if kw == "" {
			continue
		}
		if _, seen := byKeyword[kw]; !seen {
			keywords = append(keywords, kw)
		}
		byKeyword[kw] = append(byKeyword[kw], *e)
	}

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < len(keywords); i++ {
		for j := i + 1; j < len(keywords); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	scores := make([]float64, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for idx, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[idx] = Similarity(keywords[p.i], keywords[p.j])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var issues []pagelens.CannibalizationIssue
	for idx, p := range pairs {
		if scores[idx] < d.threshold {
			continue
		}
		docs := append([]pagelens.KeywordMapEntry{}, byKeyword[keywords[p.i]]...)
		docs = append(docs, byKeyword[keywords[p.j]]...)
		issues = append(issues, pagelens.CannibalizationIssue{
			Type:       pagelens.IssueSimilarKeywords,
			Keywords:   []string{keywords[p.i], keywords[p.j]},
			Severity:   pagelens.SeverityMedium,
			Documents:  docs,
			Similarity: scores[idx],
		})
	}
	return issues, nil
}

// ClusterByTopic greedily groups documents whose primary keywords are
// similar. Entries sharing a category cluster at a slightly lower bar.
func (d *Detector) ClusterByTopic(entries []*pagelens.KeywordMapEntry) []pagelens.TopicCluster {
	assigned := make([]bool, len(entries))
	var clusters []pagelens.TopicCluster

	for i, seed := range entries {
		if assigned[i] || pagelens.NormalizeKeyword(seed.PrimaryKeyword) == "" {
			continue
		}
		assigned[i] = true
		cluster := pagelens.TopicCluster{
			Topic:     pagelens.NormalizeKeyword(seed.PrimaryKeyword),
			Documents: []pagelens.KeywordMapEntry{*seed},
		}

		for j := i + 1; j < len(entries); j++ {
			if assigned[j] {
				continue
			}
			candidate := entries[j]
			threshold := d.threshold
			if sharesCategory(seed, candidate) {
				threshold -= 10
			}
			if Similarity(seed.PrimaryKeyword, candidate.PrimaryKeyword) >= threshold {
				assigned[j] = true
				cluster.Documents = append(cluster.Documents, *candidate)
			}
		}
		clusters = append(clusters, cluster)
	}

	sort.SliceStable(clusters, func(a, b int) bool {
		return len(clusters[a].Documents) > len(clusters[b].Documents)
	})
	return clusters
}

func sharesCategory(a, b *pagelens.KeywordMapEntry) bool {
	for _, ca := range a.Categories {
		for _, cb := range b.Categories {
			if pagelens.NormalizeKeyword(ca) == pagelens.NormalizeKeyword(cb) {
				return true
			}
		}
	}
	return false
}
