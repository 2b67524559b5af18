package goquery_test

import (
	"context"
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure SchemaExtractor implements pagelens.SchemaExtractor at compile time.
var _ pagelens.SchemaExtractor = (*goquery.SchemaExtractor)(nil)

func extractSchema(t *testing.T, html string) []*pagelens.SchemaEntity {
	t.Helper()

	e := goquery.NewSchemaExtractor()
	entities, err := e.ExtractSchema(context.Background(), &pagelens.Document{RawHTML: html})
	require.NoError(t, err)
	return entities
}

func TestSchemaExtractor_JSONLD(t *testing.T) {
	t.Parallel()

	t.Run("extracts a single entity", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><script type="application/ld+json">
{"@context": "https://schema.org", "@type": "Product", "name": "Grinder", "brand": "Acme"}
</script></head><body></body></html>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 1)
		assert.Equal(t, "Product", entities[0].Type())
		assert.Equal(t, "Grinder", entities[0].Property("name"))
		assert.Equal(t, pagelens.SourceJSONLD, entities[0].Source)
	})

	t.Run("flattens @graph into individual entities", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">
{"@context": "https://schema.org", "@graph": [
  {"@type": "Organization", "name": "Acme"},
  {"@type": "WebPage", "name": "Home"}
]}
</script>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 2)
		assert.Equal(t, "Organization", entities[0].Type())
		assert.Equal(t, "WebPage", entities[1].Type())
	})

	t.Run("supports multi-type entities", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">
{"@type": ["Restaurant", "LocalBusiness"], "name": "Cafe"}
</script>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 1)
		assert.Equal(t, []string{"Restaurant", "LocalBusiness"}, entities[0].Types)
	})

	t.Run("skips unparseable blocks", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">{not json</script>
<script type="application/ld+json">{"@type": "Person", "name": "Ada"}</script>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 1)
		assert.Equal(t, "Person", entities[0].Type())
	})
}

func TestSchemaExtractor_Microdata(t *testing.T) {
	t.Parallel()

	t.Run("collects properties and nested scoped items", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://schema.org/Product">
  <span itemprop="name">Grinder</span>
  <meta itemprop="sku" content="G-100">
  <div itemprop="offers" itemscope itemtype="https://schema.org/Offer">
    <span itemprop="price">49.99</span>
    <meta itemprop="priceCurrency" content="USD">
  </div>
</div>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 1)
		entity := entities[0]
		assert.Equal(t, "Product", entity.Type())
		assert.Equal(t, "Grinder", entity.Property("name"))
		assert.Equal(t, "G-100", entity.Property("sku"))

		offers, ok := entity.Property("offers").(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Offer", offers["@type"])
		assert.Equal(t, "49.99", offers["price"])
		assert.Equal(t, "USD", offers["priceCurrency"])
	})

	t.Run("reads values from href and datetime attributes", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://schema.org/Article">
  <a itemprop="url" href="https://example.com/post">Read</a>
  <time itemprop="datePublished" datetime="2024-03-01">March 1</time>
</div>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 1)
		assert.Equal(t, "https://example.com/post", entities[0].Property("url"))
		assert.Equal(t, "2024-03-01", entities[0].Property("datePublished"))
	})

	t.Run("repeated property names accumulate into a list", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://schema.org/Recipe">
  <span itemprop="recipeIngredient">flour</span>
  <span itemprop="recipeIngredient">water</span>
</div>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 1)
		list, ok := entities[0].Property("recipeIngredient").([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"flour", "water"}, list)
	})
}

func TestSchemaExtractor_RDFa(t *testing.T) {
	t.Parallel()

	t.Run("strips namespace prefixes from property names", func(t *testing.T) {
		t.Parallel()

		html := `<div typeof="schema:Person">
  <span property="schema:name">Ada Lovelace</span>
  <span property="schema:jobTitle">Mathematician</span>
</div>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 1)
		assert.Equal(t, "Person", entities[0].Type())
		assert.Equal(t, "Ada Lovelace", entities[0].Property("name"))
		assert.Equal(t, "Mathematician", entities[0].Property("jobTitle"))
		assert.Equal(t, pagelens.SourceRDFa, entities[0].Source)
	})

	t.Run("recurses into nested typed resources", func(t *testing.T) {
		t.Parallel()

		html := `<div typeof="schema:Event">
  <span property="schema:name">Launch</span>
  <div property="schema:location" typeof="schema:Place">
    <span property="schema:name">Town Hall</span>
  </div>
</div>`

		entities := extractSchema(t, html)

		require.Len(t, entities, 1)
		location, ok := entities[0].Property("location").(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Place", location["@type"])
		assert.Equal(t, "Town Hall", location["name"])
	})
}

func TestSchemaExtractor_EmptyDocument(t *testing.T) {
	t.Parallel()

	entities := extractSchema(t, "")

	assert.Empty(t, entities)
}
