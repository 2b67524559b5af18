package schema

import (
	"fmt"

	"github.com/pagelens/pagelens"
)

// validateAddress checks a PostalAddress sub-structure. The address must
// declare its type and carry the core postal fields.
func validateAddress(v any, result *pagelens.ValidationResult) {
	m := asMap(v)
	if m == nil {
		// A bare string address is legal schema.org but loses the
		// structured fields search engines read.
		result.Warnings = append(result.Warnings, "address should be a structured PostalAddress object")
		return
	}
	if nestedType(m) == "" {
		result.Issues = append(result.Issues, `address is missing "@type" (expected "PostalAddress")`)
	}
	for _, prop := range []string{"streetAddress", "addressLocality", "addressRegion", "postalCode"} {
		if isEmpty(m[prop]) {
			result.Issues = append(result.Issues, fmt.Sprintf("address is missing required property %q", prop))
		}
	}
}

// validateGeo checks a GeoCoordinates sub-structure for numeric, in-range,
// decimal-format coordinates.
func validateGeo(v any, result *pagelens.ValidationResult) {
	m := asMap(v)
	if m == nil {
		result.Issues = append(result.Issues, "geo must be a GeoCoordinates object")
		return
	}
	lat, latOK := asNumber(m["latitude"])
	if !latOK {
		result.Issues = append(result.Issues, `geo is missing numeric "latitude"`)
	} else if lat < -90 || lat > 90 {
		result.Issues = append(result.Issues, fmt.Sprintf("geo latitude %v is out of range [-90, 90]", lat))
	}
	lon, lonOK := asNumber(m["longitude"])
	if !lonOK {
		result.Issues = append(result.Issues, `geo is missing numeric "longitude"`)
	} else if lon < -180 || lon > 180 {
		result.Issues = append(result.Issues, fmt.Sprintf("geo longitude %v is out of range [-180, 180]", lon))
	}
	if latOK && !isDecimalFormat(m["latitude"]) {
		result.Warnings = append(result.Warnings, "geo latitude should use decimal notation")
	}
	if lonOK && !isDecimalFormat(m["longitude"]) {
		result.Warnings = append(result.Warnings, "geo longitude should use decimal notation")
	}
}

// validateOfferOrAggregate dispatches one element of an offers list to the
// Offer or AggregateOffer validator based on its declared type.
func validateOfferOrAggregate(v any, result *pagelens.ValidationResult) {
	m := asMap(v)
	if m == nil {
		result.Issues = append(result.Issues, "offers must contain Offer objects")
		return
	}
	if nestedType(m) == "AggregateOffer" {
		validateAggregateOffer(m, result)
		return
	}
	validateOffer(m, result)
}

// validateOffer checks a single Offer: numeric price, a currency, and an
// availability value from the schema.org enumeration when present.
func validateOffer(m map[string]any, result *pagelens.ValidationResult) {
	if _, ok := asNumber(m["price"]); !ok {
		result.Issues = append(result.Issues, `offer is missing numeric "price"`)
	}
	if isEmpty(m["priceCurrency"]) {
		result.Issues = append(result.Issues, `offer is missing required property "priceCurrency"`)
	}
	if avail := asString(m["availability"]); avail != "" {
		if !offerAvailabilityValues[stripSchemaPrefix(avail)] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("offer availability %q is not a recognized schema.org value", avail))
		}
	}
}

// validateAggregateOffer checks an AggregateOffer: lowPrice and currency are
// required, an inverted price range and a non-positive offerCount are soft
// problems.
func validateAggregateOffer(m map[string]any, result *pagelens.ValidationResult) {
	low, lowOK := asNumber(m["lowPrice"])
	if !lowOK {
		result.Issues = append(result.Issues, `aggregate offer is missing numeric "lowPrice"`)
	}
	if isEmpty(m["priceCurrency"]) {
		result.Issues = append(result.Issues, `aggregate offer is missing required property "priceCurrency"`)
	}
	if high, ok := asNumber(m["highPrice"]); ok && lowOK && high < low {
		result.Warnings = append(result.Warnings, fmt.Sprintf("aggregate offer highPrice less than lowPrice (%v < %v)", high, low))
	}
	if count, ok := asNumber(m["offerCount"]); ok && count <= 0 {
		result.Warnings = append(result.Warnings, "aggregate offer offerCount should be positive")
	}
}

// validateReview checks a Review: a nested rating with a numeric value and
// a named author are required, itemReviewed is recommended.
func validateReview(v any, result *pagelens.ValidationResult) {
	m := asMap(v)
	if m == nil {
		result.Issues = append(result.Issues, "review must be a Review object")
		return
	}
	rating := asMap(m["reviewRating"])
	if rating == nil {
		result.Issues = append(result.Issues, `review is missing required property "reviewRating"`)
	} else if _, ok := asNumber(rating["ratingValue"]); !ok {
		result.Issues = append(result.Issues, `review rating is missing numeric "ratingValue"`)
	}
	if !hasAuthorName(m["author"]) {
		result.Issues = append(result.Issues, `review is missing an author with a "name"`)
	}
	if isEmpty(m["itemReviewed"]) {
		result.Warnings = append(result.Warnings, `review is missing recommended property "itemReviewed"`)
	}
}

// hasAuthorName accepts either a plain string author or a nested Person or
// Organization carrying a name.
func hasAuthorName(v any) bool {
	if s := asString(v); s != "" {
		return true
	}
	if m := asMap(v); m != nil {
		return !isEmpty(m["name"])
	}
	return false
}

// validateAggregateRating checks an AggregateRating: a numeric ratingValue
// plus at least one of reviewCount or ratingCount.
func validateAggregateRating(v any, result *pagelens.ValidationResult) {
	m := asMap(v)
	if m == nil {
		result.Issues = append(result.Issues, "aggregateRating must be an AggregateRating object")
		return
	}
	if _, ok := asNumber(m["ratingValue"]); !ok {
		result.Issues = append(result.Issues, `aggregate rating is missing numeric "ratingValue"`)
	}
	_, hasReviews := asNumber(m["reviewCount"])
	_, hasRatings := asNumber(m["ratingCount"])
	if !hasReviews && !hasRatings {
		result.Issues = append(result.Issues, `aggregate rating needs "reviewCount" or "ratingCount"`)
	}
}

// validateFAQ checks FAQPage mainEntity: every item must be a Question with
// a name and an acceptedAnswer carrying text.
func validateFAQ(v any, result *pagelens.ValidationResult) {
	items := asList(v)
	if len(items) == 0 {
		return
	}
	for i, item := range items {
		m := asMap(item)
		if m == nil {
			result.Issues = append(result.Issues, fmt.Sprintf("FAQ item %d must be a Question object", i+1))
			continue
		}
		if t := nestedType(m); t != "" && t != "Question" {
			result.Issues = append(result.Issues, fmt.Sprintf("FAQ item %d has type %q, expected Question", i+1, t))
		}
		if isEmpty(m["name"]) {
			result.Issues = append(result.Issues, fmt.Sprintf(`FAQ item %d is missing required property "name"`, i+1))
		}
		answer := asMap(m["acceptedAnswer"])
		if answer == nil {
			result.Issues = append(result.Issues, fmt.Sprintf(`FAQ item %d is missing required property "acceptedAnswer"`, i+1))
		} else if isEmpty(answer["text"]) {
			result.Issues = append(result.Issues, fmt.Sprintf(`FAQ item %d answer is missing required property "text"`, i+1))
		}
	}
}

// validateHowToSteps checks HowTo steps: every step must carry text or a
// name describing the action.
func validateHowToSteps(v any, result *pagelens.ValidationResult) {
	for i, item := range asList(v) {
		m := asMap(item)
		if m == nil {
			if asString(item) != "" {
				continue // plain string steps are acceptable
			}
			result.Issues = append(result.Issues, fmt.Sprintf("step %d must be a HowToStep object or text", i+1))
			continue
		}
		if isEmpty(m["text"]) && isEmpty(m["name"]) {
			result.Issues = append(result.Issues, fmt.Sprintf(`step %d needs "text" or "name"`, i+1))
		}
	}
}

// validateBreadcrumbs checks BreadcrumbList items: each ListItem needs a
// position and a name (or a nested item with one), and positions must run
// 1, 2, 3 with no gaps. A gap is a warning naming the expected position.
func validateBreadcrumbs(v any, result *pagelens.ValidationResult) {
	items := asList(v)
	for i, item := range items {
		m := asMap(item)
		if m == nil {
			result.Issues = append(result.Issues, fmt.Sprintf("breadcrumb %d must be a ListItem object", i+1))
			continue
		}
		pos, posOK := asNumber(m["position"])
		if !posOK {
			result.Issues = append(result.Issues, fmt.Sprintf(`breadcrumb %d is missing numeric "position"`, i+1))
		}
		if !breadcrumbHasName(m) {
			result.Issues = append(result.Issues, fmt.Sprintf(`breadcrumb %d is missing required property "name"`, i+1))
		}
		if posOK && int(pos) != i+1 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("breadcrumb position %v is out of sequence, expected %d", pos, i+1))
		}
	}
}

// breadcrumbHasName accepts a name directly on the ListItem, a nested item
// object with a name, or a plain string item.
func breadcrumbHasName(m map[string]any) bool {
	if !isEmpty(m["name"]) {
		return true
	}
	if nested := asMap(m["item"]); nested != nil {
		return !isEmpty(nested["name"])
	}
	return asString(m["item"]) != ""
}
