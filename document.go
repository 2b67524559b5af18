package pagelens

import "context"

// Document is the parsed, queryable form of one web page. It is built once
// per analysis request and never mutated afterwards, so the analyzers may
// share it across goroutines without locking.
type Document struct {
	// URL is the resolved address of the page, if known.
	URL string `json:"url"`

	// RawHTML is the source markup the document was built from.
	RawHTML string `json:"-"`

	// Title is the contents of the <title> element.
	Title string `json:"title"`

	// MetaDescription is the page's meta description, falling back to
	// og:description when the standard tag is absent.
	MetaDescription string `json:"metaDescription"`

	// Language is the declared language tag (<html lang> or og:locale).
	// Empty when the page declares none.
	Language string `json:"language"`

	// PlainText is the visible text of the whole page with scripts, styles
	// and markup removed and whitespace collapsed.
	PlainText string `json:"plainText"`

	// ContentHash is the xxHash of RawHTML, hex encoded. Two documents with
	// the same hash produce identical analysis reports.
	ContentHash string `json:"contentHash"`
}

// DocumentParser builds a Document from raw HTML bytes.
// Implementations must tolerate malformed HTML; a parse failure is reported
// as an error with code EUNPROCESSABLE so callers can degrade to regex-only
// analysis rather than aborting the report.
type DocumentParser interface {
	Parse(raw []byte, url string) (*Document, error)
}

// BlockKind discriminates the two kinds of content block.
type BlockKind string

// Block kinds.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
)

// ContentBlock is one unit of extracted main content: a heading with its
// level, or a paragraph. Blocks carry no identity beyond their position.
type ContentBlock struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"` // 1-6 for headings, 0 for paragraphs
	Text  string    `json:"text"`
}

// ExtractedContent is the boilerplate-free content of a document, in
// document order. It is rebuilt on every extraction.
type ExtractedContent struct {
	Blocks []ContentBlock `json:"blocks"`

	// FallbackUsed is true when the DOM could not be used and the blocks
	// were recovered by regex scanning. Fallback blocks skip the
	// boilerplate exclusion rules.
	FallbackUsed bool `json:"fallbackUsed"`
}

// Paragraphs returns the paragraph blocks in order.
func (c *ExtractedContent) Paragraphs() []ContentBlock {
	return c.blocksOfKind(BlockParagraph)
}

// Headings returns the heading blocks in order.
func (c *ExtractedContent) Headings() []ContentBlock {
	return c.blocksOfKind(BlockHeading)
}

func (c *ExtractedContent) blocksOfKind(kind BlockKind) []ContentBlock {
	var out []ContentBlock
	for _, b := range c.Blocks {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// PlainText joins all block texts with newlines.
func (c *ExtractedContent) PlainText() string {
	var out string
	for i, b := range c.Blocks {
		if i > 0 {
			out += "\n"
		}
		out += b.Text
	}
	return out
}

// ContentExtractor selects the "real" content of a document, excluding
// chrome and boilerplate regions (navigation, sidebars, footers, ads).
// An empty document yields an empty ExtractedContent, not an error.
type ContentExtractor interface {
	ExtractContent(ctx context.Context, doc *Document) (*ExtractedContent, error)
}
