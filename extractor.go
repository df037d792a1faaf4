package mdtools

// TableExtractor selects table markup from HTML pages.
type TableExtractor interface {
	// ExtractTable returns the outer HTML of the first <table> in html.
	// Returns ENOTFOUND if the page has no table.
	ExtractTable(html string) (string, error)
}
