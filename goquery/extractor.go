package goquery

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagelens.ContentExtractor at compile time.
var _ pagelens.ContentExtractor = (*Extractor)(nil)

// maxAncestorDepth bounds the upward walk when checking whether a node sits
// inside a boilerplate region.
const maxAncestorDepth = 6

// contentRegionSelectors are tried in priority order; the first region that
// yields at least one meaningful paragraph wins.
var contentRegionSelectors = []string{
	"main",
	"article",
	"[role=main]",
	".entry-content",
	".post-content",
	".article-content",
	".content-area",
	"#content",
}

// chromeTags are structural chrome elements; anything inside them is boilerplate.
var chromeTags = map[string]bool{
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
	"form":   true,
}

// chromeRoles are ARIA roles that mark a region as boilerplate.
var chromeRoles = map[string]bool{
	"navigation":    true,
	"complementary": true,
	"contentinfo":   true,
	"banner":        true,
	"search":        true,
}

// boilerplateFragments mark an element as boilerplate when its class or id
// contains any of them. One canonical list serves both the paragraph and the
// heading call sites.
var boilerplateFragments = []string{
	"sidebar", "widget", "menu", "navbar", "navigation", "footer", "header",
	"comment", "pagination", "breadcrumb", "share", "social", "related",
	"promo", "ads", "advert", "banner", "cookie", "consent", "popup", "modal",
}

// Extractor selects the main content of a document, excluding chrome.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent walks the document for meaningful paragraphs and headings.
// When the DOM cannot be parsed it falls back to regex-only extraction
// rather than failing the whole analysis.
func (e *Extractor) ExtractContent(_ context.Context, doc *pagelens.Document) (*pagelens.ExtractedContent, error) {
	if doc == nil || strings.TrimSpace(doc.RawHTML) == "" {
		return &pagelens.ExtractedContent{}, nil
	}

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc.RawHTML))
	if err != nil {
		return ExtractFallback(doc.RawHTML), nil
	}

	// Try priority regions first.
	for _, selector := range contentRegionSelectors {
		region := gq.Find(selector).First()
		if region.Length() == 0 {
			continue
		}
		blocks := collectBlocks(region)
		if hasParagraph(blocks) {
			return &pagelens.ExtractedContent{Blocks: blocks}, nil
		}
	}

	// No structural region matched: fall back to all paragraph-like nodes
	// filtered by the exclusion rules.
	blocks := collectBlocks(gq.Selection)
	return &pagelens.ExtractedContent{Blocks: blocks}, nil
}

// collectBlocks gathers meaningful, non-boilerplate paragraphs and headings
// under root, in document order.
func collectBlocks(root *goquery.Selection) []pagelens.ContentBlock {
	var blocks []pagelens.ContentBlock

	root.Find("p, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if len(s.Nodes) == 0 || isExcluded(s.Nodes[0]) {
			return
		}

		text := normalizeSpace(s.Text())
		if !hasLetterOrDigit(text) {
			return
		}

		tag := goquery.NodeName(s)
		if tag == "p" {
			blocks = append(blocks, pagelens.ContentBlock{
				Kind: pagelens.BlockParagraph,
				Text: text,
			})
			return
		}

		level, err := strconv.Atoi(strings.TrimPrefix(tag, "h"))
		if err != nil {
			return
		}
		blocks = append(blocks, pagelens.ContentBlock{
			Kind:  pagelens.BlockHeading,
			Level: level,
			Text:  text,
		})
	})

	return blocks
}

// isExcluded reports whether any ancestor within maxAncestorDepth marks the
// node as boilerplate: a structural chrome tag, a chrome ARIA role, or a
// class/id containing a boilerplate fragment.
func isExcluded(n *html.Node) bool {
	depth := 0
	for p := n.Parent; p != nil && depth < maxAncestorDepth; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		depth++

		if chromeTags[p.Data] {
			return true
		}

		var class, id, role string
		for _, attr := range p.Attr {
			switch attr.Key {
			case "class":
				class = strings.ToLower(attr.Val)
			case "id":
				id = strings.ToLower(attr.Val)
			case "role":
				role = strings.ToLower(strings.TrimSpace(attr.Val))
			}
		}

		if chromeRoles[role] {
			return true
		}
		for _, fragment := range boilerplateFragments {
			if strings.Contains(class, fragment) || strings.Contains(id, fragment) {
				return true
			}
		}
	}
	return false
}

func hasParagraph(blocks []pagelens.ContentBlock) bool {
	for _, b := range blocks {
		if b.Kind == pagelens.BlockParagraph {
			return true
		}
	}
	return false
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var (
	fallbackParagraphRe = regexp.MustCompile(`(?is)<p[\s>].*?</p>`)
	fallbackHeadingRe   = regexp.MustCompile(`(?is)<h([1-6])[\s>].*?</h[1-6]>`)
	fallbackTagRe       = regexp.MustCompile(`(?s)<[^>]*>`)
)

// ExtractFallback recovers paragraphs and headings by regex scanning when
// the DOM is unusable. It applies no boilerplate filtering; results are
// flagged so downstream metrics can report degraded confidence.
func ExtractFallback(rawHTML string) *pagelens.ExtractedContent {
	content := &pagelens.ExtractedContent{FallbackUsed: true}

	for _, match := range fallbackHeadingRe.FindAllStringSubmatch(rawHTML, -1) {
		text := stripTags(match[0])
		if !hasLetterOrDigit(text) {
			continue
		}
		level, _ := strconv.Atoi(match[1])
		content.Blocks = append(content.Blocks, pagelens.ContentBlock{
			Kind:  pagelens.BlockHeading,
			Level: level,
			Text:  text,
		})
	}

	for _, match := range fallbackParagraphRe.FindAllString(rawHTML, -1) {
		text := stripTags(match)
		if !hasLetterOrDigit(text) {
			continue
		}
		content.Blocks = append(content.Blocks, pagelens.ContentBlock{
			Kind: pagelens.BlockParagraph,
			Text: text,
		})
	}

	return content
}

func stripTags(fragment string) string {
	return normalizeSpace(html.UnescapeString(fallbackTagRe.ReplaceAllString(fragment, " ")))
}
