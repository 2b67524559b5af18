// Package readability implements content extraction backed by the
// go-readability port of Mozilla's Readability.
package readability

import (
	"context"
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/pagelens/pagelens"
)

// Ensure Extractor implements pagelens.ContentExtractor at compile time.
var _ pagelens.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability. Readability keeps the dominant text
// region of the page, which makes it a useful cross-check against the
// selector-based extractor on cluttered layouts.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent runs readability over the document and converts the clean
// article HTML into content blocks.
func (e *Extractor) ExtractContent(_ context.Context, doc *pagelens.Document) (*pagelens.ExtractedContent, error) {
	if doc == nil || strings.TrimSpace(doc.RawHTML) == "" {
		return &pagelens.ExtractedContent{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(doc.RawHTML), nil)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNPROCESSABLE, "readability extraction failed: %v", err)
	}

	root, err := html.Parse(strings.NewReader(article.Content))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNPROCESSABLE, "parsing extracted content failed: %v", err)
	}

	content := &pagelens.ExtractedContent{}
	collectBlocks(root, &content.Blocks)
	return content, nil
}

// collectBlocks walks the article tree appending heading and paragraph
// blocks in document order.
func collectBlocks(n *html.Node, blocks *[]pagelens.ContentBlock) {
	if n.Type == html.ElementNode {
		if level := headingLevel(n.Data); level > 0 {
			if text := nodeText(n); text != "" {
				*blocks = append(*blocks, pagelens.ContentBlock{
					Kind:  pagelens.BlockHeading,
					Level: level,
					Text:  text,
				})
			}
			return
		}
		if n.Data == "p" {
			if text := nodeText(n); text != "" {
				*blocks = append(*blocks, pagelens.ContentBlock{
					Kind: pagelens.BlockParagraph,
					Text: text,
				})
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectBlocks(c, blocks)
	}
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// nodeText returns the whitespace-collapsed text of a node's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
