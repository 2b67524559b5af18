// Package intent classifies searcher intent for a keyword and scores how
// well a document's extracted content satisfies that intent.
package intent

import (
	"context"
	"strings"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/words"
)

// Ensure Classifier implements pagelens.IntentClassifier.
var _ pagelens.IntentClassifier = (*Classifier)(nil)

// categoryOrder fixes the winner-selection order so ties resolve
// deterministically. A tied commercial score yields to transactional, which
// matches the reporting merge.
var categoryOrder = []pagelens.Intent{
	pagelens.IntentInformational,
	pagelens.IntentTransactional,
	pagelens.IntentNavigational,
	pagelens.IntentCommercial,
}

// Classifier scores keywords against the four intent categories and scores
// content satisfaction against the winning category.
type Classifier struct {
	brands   map[string]struct{}
	products map[string]struct{}
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithBrandTerms replaces the brand-name table used for navigational boosts.
func WithBrandTerms(brands map[string]struct{}) Option {
	return func(c *Classifier) { c.brands = brands }
}

// WithProductNouns replaces the product-noun table used for commercial and
// transactional boosts.
func WithProductNouns(products map[string]struct{}) Option {
	return func(c *Classifier) { c.products = products }
}

// NewClassifier creates a Classifier with the default term tables.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		brands:   words.BrandTerms(),
		products: words.ProductNouns(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClassifyIntent scores the keyword per category, picks the winner, and
// scores content satisfaction. Commercial is scored internally but reported
// as transactional. An empty keyword yields informational with zero scores.
func (c *Classifier) ClassifyIntent(ctx context.Context, keyword, postType string, content *pagelens.ExtractedContent, schemas []*pagelens.SchemaEntity) (*pagelens.IntentProfile, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	scores := map[pagelens.Intent]float64{
		pagelens.IntentInformational: 0,
		pagelens.IntentTransactional: 0,
		pagelens.IntentNavigational:  0,
		pagelens.IntentCommercial:    0,
	}

	if keyword != "" {
		for category, patterns := range categoryPatterns {
			for _, p := range patterns {
				if p.re.MatchString(keyword) {
					scores[category] += p.weight
				}
			}
		}
		for category, prior := range postTypePriors[strings.ToLower(postType)] {
			scores[category] += prior
		}
		c.applyTermBoosts(keyword, scores)
	}

	winner := pickWinner(scores)
	markers := detectMarkers(content, schemas)

	profile := &pagelens.IntentProfile{
		Intent:       reported(winner),
		Scores:       scores,
		Markers:      markers,
		Satisfaction: satisfaction(winner, markers),
	}
	return profile, nil
}

// applyTermBoosts adds domain-term weight when any keyword token is a known
// brand (navigational) or product noun (commercial and transactional).
func (c *Classifier) applyTermBoosts(keyword string, scores map[pagelens.Intent]float64) {
	for _, token := range strings.Fields(keyword) {
		if _, ok := c.brands[token]; ok {
			scores[pagelens.IntentNavigational] += brandBoost
		}
		if _, ok := c.products[token]; ok {
			scores[pagelens.IntentCommercial] += productBoost
			scores[pagelens.IntentTransactional] += productBoost
		}
	}
}

// pickWinner returns the highest-scoring category in the fixed order, or
// informational when every score is zero.
func pickWinner(scores map[pagelens.Intent]float64) pagelens.Intent {
	winner := pagelens.IntentInformational
	best := 0.0
	for _, category := range categoryOrder {
		if scores[category] > best {
			winner = category
			best = scores[category]
		}
	}
	return winner
}

// reported maps the internal winner to the category exposed in the profile.
// Commercial investigation is folded into transactional.
func reported(winner pagelens.Intent) pagelens.Intent {
	if winner == pagelens.IntentCommercial {
		return pagelens.IntentTransactional
	}
	return winner
}

// detectMarkers computes the boolean content markers from the extracted
// content and the page's schema entities.
func detectMarkers(content *pagelens.ExtractedContent, schemas []*pagelens.SchemaEntity) map[string]bool {
	markers := map[string]bool{
		markerStructuredContent: false,
		markerMultimedia:        false,
		markerSemanticMarkup:    len(schemas) > 0,
	}

	var text string
	if content != nil {
		markers[markerStructuredContent] = len(content.Headings()) >= 3
		text = strings.ToLower(content.PlainText())
	}

	for _, entity := range schemas {
		switch entity.Type() {
		case "ImageObject", "VideoObject", "AudioObject":
			markers[markerMultimedia] = true
		case "Review", "AggregateRating":
			markers[markerReviews] = true
		}
	}

	markers[markerDefinition] = definitionRe.MatchString(text)
	markers[markerSteps] = stepsRe.MatchString(text)
	markers[markerExamples] = examplesRe.MatchString(text)
	markers[markerPricing] = pricingRe.MatchString(text)
	markers[markerCTA] = ctaRe.MatchString(text)
	markers[markerDirectLinks] = directRe.MatchString(text)
	markers[markerComparison] = comparisonRe.MatchString(text)
	markers[markerReviews] = markers[markerReviews] || reviewsRe.MatchString(text)

	return markers
}

// satisfaction computes the weighted satisfaction score for a category:
// weighted-satisfied over weighted-total, a quality multiplier from the
// universal markers, the critical-pair and funnel boosts, and the
// missing-critical penalty, clamped to [0, 1].
func satisfaction(winner pagelens.Intent, markers map[string]bool) float64 {
	weights := markerWeights[winner]

	var total, satisfied float64
	for marker, weight := range weights {
		total += weight
		if markers[marker] {
			satisfied += weight
		}
	}
	if total == 0 {
		return 0
	}
	score := satisfied / total

	switch universalCount(markers) {
	case 3:
		score *= 1.2
	case 2:
		score *= 1.1
	case 0:
		score *= 0.8
	}

	if pair, ok := criticalPairs[winner]; ok && markers[pair[0]] && markers[pair[1]] {
		score *= 1.15
	}
	if winner == pagelens.IntentTransactional &&
		markers[markerPricing] && markers[markerCTA] && markers[markerReviews] {
		score *= 1.10 // complete purchase funnel on the page
	}
	if critical, ok := criticalSingle[winner]; ok && !markers[critical] {
		score *= criticalPenalty[winner]
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// universalCount counts the satisfied universal quality markers.
func universalCount(markers map[string]bool) int {
	n := 0
	for _, marker := range []string{markerStructuredContent, markerMultimedia, markerSemanticMarkup} {
		if markers[marker] {
			n++
		}
	}
	return n
}
