// Package frontmatter implements mdtools.FrontMatterParser using
// github.com/adrg/frontmatter. YAML ("---") and TOML ("+++") blocks are
// recognized.
package frontmatter

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"github.com/fwojciec/mdtools"
	"gopkg.in/yaml.v3"
)

// Ensure Parser implements mdtools.FrontMatterParser at compile time.
var _ mdtools.FrontMatterParser = (*Parser)(nil)

// Parser splits front matter from markdown documents.
type Parser struct {
	formats []*frontmatter.Format
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{
		formats: []*frontmatter.Format{
			frontmatter.NewFormat("---", "---", yaml.Unmarshal),
			frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
		},
	}
}

// Split implements mdtools.FrontMatterParser. A leading block that is not
// a valid YAML or TOML mapping is left in the body.
func (p *Parser) Split(source []byte) (*mdtools.FrontMatter, []byte, error) {
	raw := block(source)
	if raw == nil {
		return nil, source, nil
	}

	// A block that does not decode to a mapping is a thematic break pair
	// and belongs to the body.
	fields := map[string]any{}
	if _, err := frontmatter.Parse(bytes.NewReader(raw), &fields, p.formats...); err != nil {
		return nil, source, nil
	}

	return &mdtools.FrontMatter{Raw: raw, Fields: fields}, source[len(raw):], nil
}

// block returns the leading front matter block of source, delimiters and
// trailing newline included, or nil if the document has none.
func block(source []byte) []byte {
	first, rest, ok := bytes.Cut(source, []byte("\n"))
	if !ok {
		return nil
	}
	delim := bytes.TrimRight(first, " \t\r")
	if !bytes.Equal(delim, []byte("---")) && !bytes.Equal(delim, []byte("+++")) {
		return nil
	}

	offset := len(first) + 1
	for len(rest) > 0 {
		line, next, found := bytes.Cut(rest, []byte("\n"))
		offset += len(line)
		if found {
			offset++
		}
		if bytes.Equal(bytes.TrimRight(line, " \t\r"), delim) {
			return source[:offset]
		}
		rest = next
	}
	return nil
}
