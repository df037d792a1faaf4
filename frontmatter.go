package mdtools

// FrontMatter is the metadata block at the top of a markdown document.
type FrontMatter struct {
	// Raw is the block exactly as it appears in the source, delimiters included.
	Raw []byte

	// Fields holds the decoded metadata.
	Fields map[string]any
}

// TOCDisabled reports whether the metadata opts the document out of TOC
// generation with "toc: false".
func (fm *FrontMatter) TOCDisabled() bool {
	if fm == nil {
		return false
	}
	enabled, ok := fm.Fields["toc"].(bool)
	return ok && !enabled
}

// FrontMatterParser separates front matter from a markdown body.
type FrontMatterParser interface {
	// Split returns the document's front matter and the body following it.
	// Documents without front matter return a nil FrontMatter and the
	// unchanged source.
	Split(source []byte) (*FrontMatter, []byte, error)
}
