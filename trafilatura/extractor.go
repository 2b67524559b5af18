// Package trafilatura implements content extraction backed by
// go-trafilatura's boilerplate removal.
package trafilatura

import (
	"context"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/pagelens/pagelens"
)

// Ensure Extractor implements pagelens.ContentExtractor at compile time.
var _ pagelens.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura with its fallback pipeline enabled.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent runs trafilatura over the document and converts the
// extracted content tree into content blocks.
func (e *Extractor) ExtractContent(_ context.Context, doc *pagelens.Document) (*pagelens.ExtractedContent, error) {
	if doc == nil || strings.TrimSpace(doc.RawHTML) == "" {
		return &pagelens.ExtractedContent{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(doc.RawHTML), opts)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNPROCESSABLE, "trafilatura extraction failed: %v", err)
	}

	content := &pagelens.ExtractedContent{}
	if result.ContentNode != nil {
		appendBlocks(result.ContentNode, &content.Blocks)
	}
	return content, nil
}

// appendBlocks converts the extracted tree into heading and paragraph
// blocks in document order. Trafilatura's content node uses standard HTML
// element names.
func appendBlocks(n *html.Node, blocks *[]pagelens.ContentBlock) {
	if n.Type == html.ElementNode {
		switch {
		case headingLevel(n.Data) > 0:
			if text := collapsedText(n); text != "" {
				*blocks = append(*blocks, pagelens.ContentBlock{
					Kind:  pagelens.BlockHeading,
					Level: headingLevel(n.Data),
					Text:  text,
				})
			}
			return
		case n.Data == "p":
			if text := collapsedText(n); text != "" {
				*blocks = append(*blocks, pagelens.ContentBlock{
					Kind: pagelens.BlockParagraph,
					Text: text,
				})
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendBlocks(c, blocks)
	}
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func collapsedText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
