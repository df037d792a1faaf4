package mdtools

// Ensure LineParser implements HeadingParser and TableParser at compile time.
var (
	_ HeadingParser = (*LineParser)(nil)
	_ TableParser   = (*LineParser)(nil)
)

// LineParser parses markdown line by line without building a syntax tree.
// It only recognizes ATX headings and treats every pipe-bearing line as part
// of a single table.
type LineParser struct{}

// NewLineParser returns a new LineParser.
func NewLineParser() *LineParser {
	return &LineParser{}
}

// ParseHeadings implements HeadingParser.
func (p *LineParser) ParseHeadings(source []byte) ([]Heading, error) {
	return ExtractHeadings(SplitLines(string(source))), nil
}

// ParseTable implements TableParser.
func (p *LineParser) ParseTable(source []byte) (*Table, error) {
	return ParseTable(SplitLines(string(source)))
}
