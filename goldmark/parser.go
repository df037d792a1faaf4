// Package goldmark provides CommonMark-compliant implementations of
// mdtools.HeadingParser and mdtools.TableParser built on the goldmark AST.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/mdtools"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Parser implements mdtools interfaces at compile time.
var (
	_ mdtools.HeadingParser = (*Parser)(nil)
	_ mdtools.TableParser   = (*Parser)(nil)
)

// Parser parses markdown with goldmark and the GFM table extension.
// Unlike mdtools.LineParser it only reports well-formed tables and knows
// about every kind of code block, not just fenced ones.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

func (p *Parser) parse(source []byte) ast.Node {
	return p.md.Parser().Parse(text.NewReader(source))
}

// ParseHeadings returns the ATX headings from H2 to H6. Setext headings are
// skipped so both parsers agree on what a TOC entry is.
func (p *Parser) ParseHeadings(source []byte) ([]mdtools.Heading, error) {
	doc := p.parse(source)
	anchors := mdtools.NewAnchorSet()
	var headings []mdtools.Heading

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level < mdtools.MinHeadingLevel || !isATX(h, source) {
			return ast.WalkSkipChildren, nil
		}

		title := strings.TrimSpace(string(rawLines(h, source)))
		if title == "" {
			return ast.WalkSkipChildren, nil
		}
		headings = append(headings, mdtools.Heading{
			Level:  h.Level,
			Title:  title,
			Anchor: anchors.Add(title),
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return headings, nil
}

// ParseTable returns the first table in source.
func (p *Parser) ParseTable(source []byte) (*mdtools.Table, error) {
	doc := p.parse(source)

	var found *east.Table
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*east.Table); ok && entering {
			found = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if found == nil {
		return nil, mdtools.Errorf(mdtools.EINVALID, "no markdown table found")
	}

	table := &mdtools.Table{}
	for row := found.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for c := row.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, cellText(c, source))
		}
		switch row.(type) {
		case *east.TableHeader:
			table.Header = cells
		case *east.TableRow:
			table.Rows = append(table.Rows, cells)
		}
	}

	// GFM ignores excess cells and fills missing ones with empty cells.
	for i, row := range table.Rows {
		for len(row) < len(table.Header) {
			row = append(row, "")
		}
		table.Rows[i] = row[:len(table.Header)]
	}
	return table, nil
}

// isATX reports whether the heading was written with leading '#' characters.
func isATX(h *ast.Heading, source []byte) bool {
	lines := h.Lines()
	if lines.Len() == 0 {
		return false
	}
	start := lines.At(0).Start
	lineStart := bytes.LastIndexByte(source[:start], '\n') + 1
	return bytes.HasPrefix(bytes.TrimLeft(source[lineStart:start], " \t"), []byte("#"))
}

func rawLines(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// cellText returns the source text of a table cell with escaped pipes
// resolved. Inline markup is kept as written.
func cellText(n ast.Node, source []byte) string {
	raw := rawLines(n, source)
	if len(raw) == 0 {
		raw = inlineText(n, source)
	}
	return strings.TrimSpace(strings.ReplaceAll(string(raw), `\|`, "|"))
}

// inlineText reassembles inline children into markdown.
func inlineText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(v.Value)
		case *ast.CodeSpan:
			buf.WriteByte('`')
			buf.Write(inlineText(v, source))
			buf.WriteByte('`')
		case *ast.Emphasis:
			mark := bytes.Repeat([]byte("*"), v.Level)
			buf.Write(mark)
			buf.Write(inlineText(v, source))
			buf.Write(mark)
		case *ast.Link:
			buf.WriteByte('[')
			buf.Write(inlineText(v, source))
			buf.WriteString("](")
			buf.Write(v.Destination)
			buf.WriteByte(')')
		case *ast.Image:
			buf.WriteString("![")
			buf.Write(inlineText(v, source))
			buf.WriteString("](")
			buf.Write(v.Destination)
			buf.WriteByte(')')
		case *ast.AutoLink:
			buf.Write(v.URL(source))
		case *ast.RawHTML:
			for i := 0; i < v.Segments.Len(); i++ {
				seg := v.Segments.At(i)
				buf.Write(seg.Value(source))
			}
		default:
			buf.Write(inlineText(v, source))
		}
	}
	return buf.Bytes()
}
