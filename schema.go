package pagelens

import "context"

// SchemaSource identifies the HTML encoding a schema entity was read from.
type SchemaSource string

// Schema entity sources.
const (
	SourceJSONLD    SchemaSource = "json-ld"
	SourceMicrodata SchemaSource = "microdata"
	SourceRDFa      SchemaSource = "rdfa"
)

// SchemaEntity is one schema.org entity in canonical shape, regardless of
// the encoding it was extracted from. Types holds the @type value(s);
// Properties maps property names to scalars, nested entities
// (map[string]any), or lists of either.
type SchemaEntity struct {
	Types      []string       `json:"types"`
	Properties map[string]any `json:"properties"`
	Source     SchemaSource   `json:"source"`
}

// Type returns the entity's first declared type, or "" when untyped.
func (e *SchemaEntity) Type() string {
	if len(e.Types) == 0 {
		return ""
	}
	return e.Types[0]
}

// Property returns the named property, nil when absent.
func (e *SchemaEntity) Property(name string) any {
	if e.Properties == nil {
		return nil
	}
	return e.Properties[name]
}

// ValidationResult accumulates schema validation outcomes for one entity.
// Missing required properties become Issues, missing recommended properties
// and soft rule violations become Warnings; neither is ever raised as an
// error.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

// SchemaExtractor scans a document for schema.org entities in JSON-LD,
// Microdata, and RDFa encodings.
type SchemaExtractor interface {
	ExtractSchema(ctx context.Context, doc *Document) ([]*SchemaEntity, error)
}

// SchemaValidator validates one entity against per-type property rules.
type SchemaValidator interface {
	ValidateEntity(entity *SchemaEntity) *ValidationResult
}
