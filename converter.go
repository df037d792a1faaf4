package mdtools

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Tables are rendered as pipe tables.
	Convert(html string) (string, error)
}
