package goquery_test

import (
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements pagelens.DocumentParser at compile time.
var _ pagelens.DocumentParser = (*goquery.Parser)(nil)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, description and language", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head>
<title>Coffee Brewing Guide</title>
<meta name="description" content="How to brew great coffee at home.">
</head>
<body><p>Brewing coffee takes care.</p></body>
</html>`

		p := goquery.NewParser()
		doc, err := p.Parse([]byte(html), "https://example.com/coffee")
		require.NoError(t, err)

		assert.Equal(t, "Coffee Brewing Guide", doc.Title)
		assert.Equal(t, "How to brew great coffee at home.", doc.MetaDescription)
		assert.Equal(t, "en", doc.Language)
		assert.Equal(t, "https://example.com/coffee", doc.URL)
		assert.Equal(t, "Brewing coffee takes care.", doc.PlainText)
		assert.NotEmpty(t, doc.ContentHash)
	})

	t.Run("falls back to og:description and og:locale", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:description" content="Social description.">
<meta property="og:locale" content="de_DE">
</head><body><p>Inhalt</p></body></html>`

		p := goquery.NewParser()
		doc, err := p.Parse([]byte(html), "")
		require.NoError(t, err)

		assert.Equal(t, "Social description.", doc.MetaDescription)
		assert.Equal(t, "de_DE", doc.Language)
	})

	t.Run("strips scripts and styles from plain text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<script>var x = "invisible";</script>
<style>.a { color: red }</style>
<p>Visible text.</p>
</body></html>`

		p := goquery.NewParser()
		doc, err := p.Parse([]byte(html), "")
		require.NoError(t, err)

		assert.Equal(t, "Visible text.", doc.PlainText)
	})

	t.Run("empty input returns EINVALID", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser()
		_, err := p.Parse(nil, "")

		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})

	t.Run("identical input yields identical hash", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser()
		first, err := p.Parse([]byte("<p>same</p>"), "")
		require.NoError(t, err)
		second, err := p.Parse([]byte("<p>same</p>"), "")
		require.NoError(t, err)

		assert.Equal(t, first.ContentHash, second.ContentHash)
	})

	t.Run("tolerates malformed HTML", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser()
		doc, err := p.Parse([]byte("<p>unclosed <div><span>soup"), "")
		require.NoError(t, err)

		assert.Contains(t, doc.PlainText, "unclosed")
	})
}
