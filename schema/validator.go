// Package schema validates schema.org entities against per-type property
// rules and nested sub-structure rules. Validation outcomes accumulate as
// data (issues and warnings), never as errors.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pagelens/pagelens"
)

// Ensure Validator implements pagelens.SchemaValidator at compile time.
var _ pagelens.SchemaValidator = (*Validator)(nil)

// Validator dispatches entities to their type rules. Rule tables are
// injected at construction so they can be swapped per locale or test.
type Validator struct {
	rules     map[string]TypeRule
	hierarchy map[string][]string
}

// Option configures a Validator.
type Option func(*Validator)

// WithRules replaces the per-type property rules.
func WithRules(rules map[string]TypeRule) Option {
	return func(v *Validator) { v.rules = rules }
}

// WithTypeHierarchy replaces the subtype table.
func WithTypeHierarchy(hierarchy map[string][]string) Option {
	return func(v *Validator) { v.hierarchy = hierarchy }
}

// NewValidator creates a Validator with the default rules.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		rules:     DefaultRules(),
		hierarchy: DefaultTypeHierarchy(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateEntity checks required and recommended properties for the entity's
// type, then runs the dedicated validators for any nested sub-structures it
// carries.
func (v *Validator) ValidateEntity(entity *pagelens.SchemaEntity) *pagelens.ValidationResult {
	result := &pagelens.ValidationResult{Valid: true}
	if entity == nil {
		result.Valid = false
		result.Issues = append(result.Issues, "no entity")
		return result
	}

	typeName, rule := v.resolveRule(entity)

	for _, prop := range rule.Required {
		if isEmpty(entity.Property(prop)) {
			result.Issues = append(result.Issues, fmt.Sprintf("missing required property %q", prop))
		}
	}
	for _, prop := range rule.Recommended {
		if isEmpty(entity.Property(prop)) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("missing recommended property %q", prop))
		}
	}

	v.validateNested(typeName, entity, result)

	result.Valid = len(result.Issues) == 0
	return result
}

// resolveRule finds the rule for the entity's first recognized type,
// following aliases and the one-level subtype table before giving up and
// using the default rule.
func (v *Validator) resolveRule(entity *pagelens.SchemaEntity) (string, TypeRule) {
	for _, t := range entity.Types {
		if alias, ok := ruleAliases[t]; ok {
			t = alias
		}
		if rule, ok := v.rules[t]; ok {
			return t, rule
		}
		for _, general := range sortedKeys(v.rules) {
			if general != defaultTypeKey && v.BelongsToType(t, general) {
				return general, v.rules[general]
			}
		}
	}
	return entity.Type(), v.rules[defaultTypeKey]
}

// BelongsToType reports whether specific is general itself or one of its
// direct subtypes in the static table.
func (v *Validator) BelongsToType(specific, general string) bool {
	if specific == general {
		return true
	}
	for _, sub := range v.hierarchy[general] {
		if sub == specific {
			return true
		}
	}
	return false
}

// validateNested runs the sub-structure validators that apply to the
// resolved type and to any recognizably shaped nested properties.
func (v *Validator) validateNested(typeName string, entity *pagelens.SchemaEntity, result *pagelens.ValidationResult) {
	if addr := entity.Property("address"); !isEmpty(addr) {
		validateAddress(addr, result)
	}
	if geo := entity.Property("geo"); !isEmpty(geo) {
		validateGeo(geo, result)
	}
	if offers := entity.Property("offers"); !isEmpty(offers) {
		for _, item := range asList(offers) {
			validateOfferOrAggregate(item, result)
		}
	}
	if review := entity.Property("review"); !isEmpty(review) {
		for _, item := range asList(review) {
			validateReview(item, result)
		}
	}
	if rating := entity.Property("aggregateRating"); !isEmpty(rating) {
		validateAggregateRating(rating, result)
	}

	switch typeName {
	case "FAQPage":
		validateFAQ(entity.Property("mainEntity"), result)
	case "HowTo":
		validateHowToSteps(entity.Property("step"), result)
	case "BreadcrumbList":
		validateBreadcrumbs(entity.Property("itemListElement"), result)
	}
}

func sortedKeys(rules map[string]TypeRule) []string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stripSchemaPrefix removes a schema.org URL or namespace prefix from an
// enumeration value ("https://schema.org/InStock" -> "InStock").
func stripSchemaPrefix(value string) string {
	value = strings.TrimSpace(strings.TrimSuffix(value, "/"))
	if i := strings.LastIndexAny(value, ":/"); i >= 0 && i < len(value)-1 {
		return value[i+1:]
	}
	return value
}
