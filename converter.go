package pagelens

// Converter converts HTML to Markdown. Used to render extracted content for
// human review alongside a report.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
