package intent

import (
	"regexp"

	"github.com/pagelens/pagelens"
)

// weightedPattern is one intent signal with its fixed weight.
type weightedPattern struct {
	re     *regexp.Regexp
	weight float64
}

// categoryPatterns hold the per-category keyword signals. Weights range
// from 1.5 for weak signals to 3.0 for unambiguous ones.
var categoryPatterns = map[pagelens.Intent][]weightedPattern{
	pagelens.IntentInformational: {
		{regexp.MustCompile(`^(how|what|why|when|where|who|which)\b`), 3.0},
		{regexp.MustCompile(`\b(how to|what is|what are|guide|tutorial|learn)\b`), 2.5},
		{regexp.MustCompile(`\b(tips?|examples?|ideas|ways to)\b`), 2.0},
		{regexp.MustCompile(`\b(meaning|definition|explained|history of)\b`), 2.0},
		{regexp.MustCompile(`\?$`), 1.5},
	},
	pagelens.IntentTransactional: {
		{regexp.MustCompile(`\b(buy|purchase|order|shop)\b`), 3.0},
		{regexp.MustCompile(`\b(cheap|discount|deal|coupon|sale|price|pricing)\b`), 2.5},
		{regexp.MustCompile(`\b(for sale|near me|free shipping|download|trial)\b`), 2.0},
		{regexp.MustCompile(`\b(subscribe|subscription|quote)\b`), 1.5},
	},
	pagelens.IntentNavigational: {
		{regexp.MustCompile(`\b(login|log in|sign in|signin|account)\b`), 3.0},
		{regexp.MustCompile(`\b(website|homepage|official site|official)\b`), 2.5},
		{regexp.MustCompile(`\b(contact|dashboard|app|portal)\b`), 2.0},
		{regexp.MustCompile(`\b(address|hours|location|phone number)\b`), 1.5},
	},
	pagelens.IntentCommercial: {
		{regexp.MustCompile(`\b(best|top|review|reviews)\b`), 3.0},
		{regexp.MustCompile(`\b(compare|comparison|vs|versus)\b`), 3.0},
		{regexp.MustCompile(`\b(alternatives?|rated|ranking|cheapest)\b`), 2.5},
		{regexp.MustCompile(`^top \d+`), 2.0},
		{regexp.MustCompile(`\b(worth it|pros and cons)\b`), 2.0},
	},
}

// postTypePriors bias the category scores by the kind of page the keyword
// targets.
var postTypePriors = map[string]map[pagelens.Intent]float64{
	"product": {
		pagelens.IntentTransactional: 2.0,
		pagelens.IntentCommercial:    1.5,
	},
	"post": {
		pagelens.IntentInformational: 1.5,
	},
	"page": {
		pagelens.IntentInformational: 0.5,
	},
	"landing": {
		pagelens.IntentCommercial:    1.5,
		pagelens.IntentTransactional: 1.0,
	},
}

// Term boosts applied when a keyword token is a known brand or product noun.
const (
	brandBoost   = 2.5
	productBoost = 1.5
)

// Content satisfaction marker names.
const (
	markerStructuredContent = "structured_content"
	markerMultimedia        = "multimedia"
	markerSemanticMarkup    = "semantic_markup"
	markerDefinition        = "has_definition"
	markerSteps             = "has_steps"
	markerExamples          = "has_examples"
	markerPricing           = "has_pricing"
	markerCTA               = "has_cta"
	markerDirectLinks       = "has_direct_links"
	markerComparison        = "has_comparison"
	markerReviews           = "has_reviews"
)

// Marker detection patterns, applied to lowercased plain text.
var (
	definitionRe = regexp.MustCompile(`\b(is an?|refers to|is defined as|is a type of|is the process of|means that)\b`)
	stepsRe      = regexp.MustCompile(`\bstep \d|\bfirst(,| you)|\bnext(,| you)|\bfinally\b|^\d+\.\s`)
	examplesRe   = regexp.MustCompile(`\bfor example\b|\bfor instance\b|\bsuch as\b|\be\.g\.`)
	pricingRe    = regexp.MustCompile(`[$€£]\s?\d|\b\d+([.,]\d{2})?\s?(usd|eur|gbp|dollars|euros)\b|\bpric(e|es|ing)\b|\bcost(s)?\b`)
	ctaRe        = regexp.MustCompile(`\bbuy now\b|\badd to cart\b|\border now\b|\bget started\b|\bsign up\b|\bshop now\b|\bsubscribe\b|\bcheckout\b|\bbook now\b`)
	directRe     = regexp.MustCompile(`\bcontact us\b|\bvisit (us|our)\b|\bofficial\b|\bhome ?page\b|\blog ?in\b|\bsign ?in\b|\bour (store|office|location)\b`)
	comparisonRe = regexp.MustCompile(`\bvs\.?\b|\bversus\b|\bcompared? (to|with)\b|\bpros and cons\b|\bbetter than\b|\balternative(s)? to\b`)
	reviewsRe    = regexp.MustCompile(`\breview(s|ed)?\b|\bratings?\b|\bstars?\b|\btested\b|\bverdict\b`)
)

// markerWeights is the per-intent weight table for satisfaction scoring.
// Markers absent from a category's table do not count toward its total.
var markerWeights = map[pagelens.Intent]map[string]float64{
	pagelens.IntentInformational: {
		markerDefinition:        3.0,
		markerSteps:             2.5,
		markerExamples:          2.0,
		markerStructuredContent: 2.0,
		markerMultimedia:        1.0,
		markerSemanticMarkup:    1.0,
	},
	pagelens.IntentTransactional: {
		markerPricing:           3.0,
		markerCTA:               3.0,
		markerMultimedia:        1.5,
		markerSemanticMarkup:    1.5,
		markerStructuredContent: 1.0,
		markerReviews:           1.0,
	},
	pagelens.IntentNavigational: {
		markerDirectLinks:       3.0,
		markerSemanticMarkup:    2.0,
		markerStructuredContent: 1.0,
		markerMultimedia:        1.0,
	},
	pagelens.IntentCommercial: {
		markerComparison:        3.0,
		markerReviews:           3.0,
		markerPricing:           2.0,
		markerStructuredContent: 1.5,
		markerMultimedia:        1.0,
		markerSemanticMarkup:    1.0,
	},
}

// criticalPairs are the two markers whose co-occurrence earns the
// satisfaction boost for each category.
var criticalPairs = map[pagelens.Intent][2]string{
	pagelens.IntentInformational: {markerDefinition, markerSteps},
	pagelens.IntentTransactional: {markerPricing, markerCTA},
	pagelens.IntentNavigational:  {markerDirectLinks, markerSemanticMarkup},
	pagelens.IntentCommercial:    {markerComparison, markerReviews},
}

// criticalSingle is the one marker whose absence is heavily penalized.
var criticalSingle = map[pagelens.Intent]string{
	pagelens.IntentTransactional: markerCTA,
	pagelens.IntentNavigational:  markerDirectLinks,
	pagelens.IntentCommercial:    markerComparison,
}

// criticalPenalty is the satisfaction multiplier when criticalSingle is
// missing.
var criticalPenalty = map[pagelens.Intent]float64{
	pagelens.IntentTransactional: 0.5,
	pagelens.IntentNavigational:  0.6,
	pagelens.IntentCommercial:    0.6,
}
