package schema

// TypeRule lists the required and recommended properties of one schema type.
// Missing required properties become issues; missing recommended properties
// become warnings.
type TypeRule struct {
	Required    []string
	Recommended []string
}

// defaultTypeKey matches any type without a dedicated rule.
const defaultTypeKey = "default"

// DefaultRules returns the per-type property rules. The map is rebuilt on
// every call so callers may customize their copy.
func DefaultRules() map[string]TypeRule {
	return map[string]TypeRule{
		"Article": {
			Required:    []string{"headline", "datePublished", "author"},
			Recommended: []string{"image", "dateModified", "publisher", "description", "mainEntityOfPage"},
		},
		"Product": {
			Required:    []string{"name"},
			Recommended: []string{"image", "description", "offers", "brand", "sku", "aggregateRating", "review"},
		},
		"Organization": {
			Required:    []string{"name"},
			Recommended: []string{"url", "logo", "address", "contactPoint", "sameAs"},
		},
		"LocalBusiness": {
			Required:    []string{"name", "address"},
			Recommended: []string{"telephone", "url", "geo", "openingHoursSpecification", "priceRange", "image"},
		},
		"Person": {
			Required:    []string{"name"},
			Recommended: []string{"url", "image", "jobTitle", "sameAs"},
		},
		"Event": {
			Required:    []string{"name", "startDate", "location"},
			Recommended: []string{"endDate", "description", "image", "offers", "organizer", "performer"},
		},
		"FAQPage": {
			Required: []string{"mainEntity"},
		},
		"HowTo": {
			Required:    []string{"name", "step"},
			Recommended: []string{"description", "image", "totalTime", "supply", "tool"},
		},
		"BreadcrumbList": {
			Required: []string{"itemListElement"},
		},
		"VideoObject": {
			Required:    []string{"name", "thumbnailUrl", "uploadDate"},
			Recommended: []string{"description", "duration", "contentUrl", "embedUrl"},
		},
		defaultTypeKey: {
			Required:    []string{"name"},
			Recommended: []string{"description"},
		},
	}
}

// ruleAliases map types that share another type's rule set.
var ruleAliases = map[string]string{
	"BlogPosting": "Article",
	"NewsArticle": "Article",
}

// DefaultTypeHierarchy returns the one-level subtype table used by
// BelongsToType. There is no multi-level inheritance resolution.
func DefaultTypeHierarchy() map[string][]string {
	return map[string][]string{
		"LocalBusiness": {
			"Restaurant", "CafeOrCoffeeShop", "Bakery", "BarOrPub", "Store",
			"Dentist", "Attorney", "AutoRepair", "HairSalon", "Plumber",
			"Electrician", "RealEstateAgent", "MedicalBusiness", "LodgingBusiness",
		},
		"CreativeWork": {
			"Article", "BlogPosting", "NewsArticle", "Recipe", "Book",
			"HowTo", "VideoObject", "Movie", "MusicRecording",
		},
		"Organization": {
			"Corporation", "EducationalOrganization", "GovernmentOrganization",
			"LocalBusiness", "NGO", "SportsOrganization",
		},
		"WebPage": {
			"AboutPage", "ContactPage", "FAQPage", "CheckoutPage",
			"CollectionPage", "ItemPage", "ProfilePage", "SearchResultsPage",
		},
		"Product": {
			"IndividualProduct", "ProductModel", "SomeProducts", "Vehicle",
		},
	}
}

// offerAvailabilityValues is the allowed set for the Offer availability
// property, matched after stripping a schema.org URL prefix.
var offerAvailabilityValues = map[string]bool{
	"InStock":             true,
	"OutOfStock":          true,
	"PreOrder":            true,
	"PreSale":             true,
	"BackOrder":           true,
	"Discontinued":        true,
	"SoldOut":             true,
	"OnlineOnly":          true,
	"InStoreOnly":         true,
	"LimitedAvailability": true,
}
