package goquery

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
	"golang.org/x/net/html"
)

// Ensure SchemaExtractor implements pagelens.SchemaExtractor at compile time.
var _ pagelens.SchemaExtractor = (*SchemaExtractor)(nil)

// SchemaExtractor scans a document for schema.org entities in JSON-LD,
// Microdata, and RDFa encodings and normalizes them into one canonical shape.
type SchemaExtractor struct{}

// NewSchemaExtractor creates a new SchemaExtractor.
func NewSchemaExtractor() *SchemaExtractor {
	return &SchemaExtractor{}
}

// ExtractSchema returns all entities found in the document, in encoding
// order JSON-LD, Microdata, RDFa. Unparseable script blocks are skipped,
// never raised.
func (e *SchemaExtractor) ExtractSchema(_ context.Context, doc *pagelens.Document) ([]*pagelens.SchemaEntity, error) {
	if doc == nil || strings.TrimSpace(doc.RawHTML) == "" {
		return nil, nil
	}

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc.RawHTML))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNPROCESSABLE, "failed to parse HTML: %v", err)
	}

	var entities []*pagelens.SchemaEntity
	entities = append(entities, extractJSONLD(gq)...)
	entities = append(entities, extractMicrodata(gq)...)
	entities = append(entities, extractRDFa(gq)...)
	return entities, nil
}

// extractJSONLD parses every ld+json script block, flattening @graph arrays
// into individual entities.
func extractJSONLD(gq *goquery.Document) []*pagelens.SchemaEntity {
	var entities []*pagelens.SchemaEntity

	gq.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return
		}
		for _, node := range flattenJSONLD(data) {
			if entity := entityFromMap(node, pagelens.SourceJSONLD); entity != nil {
				entities = append(entities, entity)
			}
		}
	})

	return entities
}

// flattenJSONLD expands top-level arrays and @graph containers into a flat
// list of entity maps.
func flattenJSONLD(data any) []map[string]any {
	var out []map[string]any
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			out = append(out, flattenJSONLD(item)...)
		}
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				out = append(out, flattenJSONLD(item)...)
			}
			return out
		}
		out = append(out, v)
	}
	return out
}

// entityFromMap converts a JSON-LD node into the canonical entity shape.
func entityFromMap(node map[string]any, source pagelens.SchemaSource) *pagelens.SchemaEntity {
	types := typeList(node["@type"])
	if len(types) == 0 {
		return nil
	}

	props := make(map[string]any)
	for name, value := range node {
		if strings.HasPrefix(name, "@") {
			continue
		}
		addProperty(props, name, value)
	}

	return &pagelens.SchemaEntity{Types: types, Properties: props, Source: source}
}

// typeList normalizes a @type value (string or list) into a string slice.
func typeList(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case []any:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	return nil
}

// addProperty stores a property value, keeping the first occurrence in place
// and accumulating repeats into a list.
func addProperty(props map[string]any, name string, value any) {
	existing, ok := props[name]
	if !ok {
		props[name] = value
		return
	}
	if list, ok := existing.([]any); ok {
		props[name] = append(list, value)
		return
	}
	props[name] = []any{existing, value}
}

// extractMicrodata walks itemscope roots, collecting itemprop name/value
// pairs and recursing into nested scoped items.
func extractMicrodata(gq *goquery.Document) []*pagelens.SchemaEntity {
	var entities []*pagelens.SchemaEntity

	gq.Find("[itemscope]").Each(func(_ int, s *goquery.Selection) {
		node := s.Nodes[0]
		// Nested itemscopes become nested property values of their parent.
		if hasScopedAncestor(node) {
			return
		}
		types := microdataTypes(attrValue(node, "itemtype"))
		props := make(map[string]any)
		walkMicrodata(node, props)
		if len(types) > 0 || len(props) > 0 {
			entities = append(entities, &pagelens.SchemaEntity{
				Types:      types,
				Properties: props,
				Source:     pagelens.SourceMicrodata,
			})
		}
	})

	return entities
}

func hasScopedAncestor(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && hasAttr(p, "itemscope") {
			return true
		}
	}
	return false
}

// walkMicrodata collects itemprop values under n without crossing into
// nested itemscope subtrees, which are collected recursively as nested maps.
func walkMicrodata(n *html.Node, props map[string]any) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		name := attrValue(c, "itemprop")
		if name != "" {
			if hasAttr(c, "itemscope") {
				nested := map[string]any{}
				if t := schemaTypeName(attrValue(c, "itemtype")); t != "" {
					nested["@type"] = t
				}
				nestedProps := make(map[string]any)
				walkMicrodata(c, nestedProps)
				for k, v := range nestedProps {
					nested[k] = v
				}
				addProperty(props, name, nested)
				continue
			}
			addProperty(props, name, elementValue(c))
		}

		if !hasAttr(c, "itemscope") {
			walkMicrodata(c, props)
		}
	}
}

// extractRDFa walks typeof roots the same way, stripping namespace prefixes
// from property names.
func extractRDFa(gq *goquery.Document) []*pagelens.SchemaEntity {
	var entities []*pagelens.SchemaEntity

	gq.Find("[typeof]").Each(func(_ int, s *goquery.Selection) {
		node := s.Nodes[0]
		if hasTypedAncestor(node) {
			return
		}
		types := rdfaTypes(attrValue(node, "typeof"))
		props := make(map[string]any)
		walkRDFa(node, props)
		if len(types) > 0 || len(props) > 0 {
			entities = append(entities, &pagelens.SchemaEntity{
				Types:      types,
				Properties: props,
				Source:     pagelens.SourceRDFa,
			})
		}
	})

	return entities
}

func hasTypedAncestor(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && attrValue(p, "typeof") != "" {
			return true
		}
	}
	return false
}

func walkRDFa(n *html.Node, props map[string]any) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		name := stripPrefix(attrValue(c, "property"))
		if name != "" {
			if attrValue(c, "typeof") != "" {
				nested := map[string]any{}
				if types := rdfaTypes(attrValue(c, "typeof")); len(types) > 0 {
					nested["@type"] = types[0]
				}
				nestedProps := make(map[string]any)
				walkRDFa(c, nestedProps)
				for k, v := range nestedProps {
					nested[k] = v
				}
				addProperty(props, name, nested)
				continue
			}
			addProperty(props, name, elementValue(c))
		}

		if attrValue(c, "typeof") == "" {
			walkRDFa(c, props)
		}
	}
}

func rdfaTypes(v string) []string {
	var out []string
	for _, t := range strings.Fields(v) {
		if name := stripPrefix(t); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// stripPrefix removes a namespace or URL prefix from an RDFa term
// ("schema:Product" or "https://schema.org/Product" -> "Product").
func stripPrefix(term string) string {
	term = strings.TrimSpace(term)
	if i := strings.LastIndexAny(term, ":/"); i >= 0 && i < len(term)-1 {
		// Keep full URLs out; take the final path or prefix segment.
		return term[i+1:]
	}
	return term
}

// microdataTypes strips the schema.org URL prefix from each space-separated
// itemtype value.
func microdataTypes(itemtype string) []string {
	var names []string
	for _, p := range strings.Fields(itemtype) {
		p = strings.TrimSuffix(p, "/")
		if i := strings.LastIndex(p, "/"); i >= 0 {
			p = p[i+1:]
		}
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// schemaTypeName returns the first normalized itemtype name, for nested items.
func schemaTypeName(itemtype string) string {
	if names := microdataTypes(itemtype); len(names) > 0 {
		return names[0]
	}
	return ""
}

// elementValue reads a property value from the conventional attributes,
// falling back to the element's text.
func elementValue(n *html.Node) string {
	for _, attr := range []string{"content", "href", "src", "datetime"} {
		if v := attrValue(n, attr); v != "" {
			return v
		}
	}
	return normalizeSpace(nodeText(n))
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}
