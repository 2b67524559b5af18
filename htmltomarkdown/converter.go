// Package htmltomarkdown renders HTML as Markdown for report output.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/pagelens/pagelens"
)

// Ensure Converter implements pagelens.Converter at compile time.
var _ pagelens.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagelens.Errorf(pagelens.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// ConvertBlocks renders extracted content blocks as Markdown, preserving
// heading levels.
func (c *Converter) ConvertBlocks(content *pagelens.ExtractedContent) string {
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, block := range content.Blocks {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		if block.Kind == pagelens.BlockHeading {
			b.WriteString(strings.Repeat("#", block.Level))
			b.WriteByte(' ')
		}
		b.WriteString(block.Text)
	}
	return b.String()
}
