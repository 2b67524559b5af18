// Package goquery provides the DOM-backed implementations of the pagelens
// parsing, content extraction, and schema extraction interfaces.
package goquery

import (
	"bytes"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/pagelens/pagelens"
	"golang.org/x/net/html/charset"
)

// Ensure Parser implements pagelens.DocumentParser at compile time.
var _ pagelens.DocumentParser = (*Parser)(nil)

// Parser builds pagelens Documents from raw HTML bytes.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Parse decodes the input to UTF-8, parses it, and derives the document's
// title, meta description, language, and plain text. A failed parse returns
// an EUNPROCESSABLE error so callers can degrade to regex-only analysis.
func (p *Parser) Parse(raw []byte, url string) (*pagelens.Document, error) {
	if len(raw) == 0 {
		return nil, pagelens.Errorf(pagelens.EINVALID, "empty HTML input")
	}

	utf8data := decodeToUTF8(raw)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNPROCESSABLE, "failed to parse HTML: %v", err)
	}

	// Scripts and styles never contribute to visible text.
	doc.Find("script,noscript,style").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	title := strings.TrimSpace(doc.Find("title").First().Text())

	desc := strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	if desc == "" {
		desc = strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
	}

	lang := strings.TrimSpace(doc.Find("html").AttrOr("lang", ""))
	if lang == "" {
		lang = strings.TrimSpace(doc.Find(`meta[property="og:locale"]`).AttrOr("content", ""))
	}

	text := strings.TrimSpace(whitespaceRe.ReplaceAllString(doc.Find("body").Text(), " "))
	if text == "" {
		text = strings.TrimSpace(whitespaceRe.ReplaceAllString(doc.Text(), " "))
	}

	return &pagelens.Document{
		URL:             url,
		RawHTML:         string(utf8data),
		Title:           title,
		MetaDescription: desc,
		Language:        lang,
		PlainText:       text,
		ContentHash:     hashContent(utf8data),
	}, nil
}

// decodeToUTF8 sniffs the input encoding and decodes to UTF-8, passing
// through unchanged when the input is already valid UTF-8 and decoding fails.
func decodeToUTF8(raw []byte) []byte {
	enc, _, _ := charset.DetermineEncoding(raw, "")
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		if utf8.Valid(raw) {
			return raw
		}
		return bytes.ToValidUTF8(raw, []byte("�"))
	}
	return decoded
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content []byte) string {
	h := xxhash.Sum64(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
