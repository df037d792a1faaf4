// Package goquery selects table markup from HTML pages using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdtools"
	"golang.org/x/net/html"
)

// DefaultTableSelector matches every table on a page.
const DefaultTableSelector = "table"

// Ensure TableExtractor implements mdtools.TableExtractor at compile time.
var _ mdtools.TableExtractor = (*TableExtractor)(nil)

// TableExtractor returns the first element matching a CSS selector.
type TableExtractor struct {
	selector string
}

// Option configures a TableExtractor.
type Option func(*TableExtractor)

// WithSelector narrows extraction to tables matching a CSS selector,
// e.g. "table.comparison" or "#features table".
func WithSelector(selector string) Option {
	return func(e *TableExtractor) {
		if selector != "" {
			e.selector = selector
		}
	}
}

// NewTableExtractor creates a new TableExtractor.
func NewTableExtractor(opts ...Option) *TableExtractor {
	e := &TableExtractor{selector: DefaultTableSelector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractTable implements mdtools.TableExtractor.
func (e *TableExtractor) ExtractTable(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", mdtools.Errorf(mdtools.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(e.selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return goquery.NodeName(s) == "table"
	}).First()
	if sel.Length() == 0 {
		return "", mdtools.Errorf(mdtools.ENOTFOUND, "no table matching %q found", e.selector)
	}

	return renderNode(sel.Get(0))
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
