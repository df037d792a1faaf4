package mock

import "github.com/fwojciec/mdtools"

var _ mdtools.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of mdtools.TableExtractor.
type TableExtractor struct {
	ExtractTableFn func(html string) (string, error)
}

func (e *TableExtractor) ExtractTable(html string) (string, error) {
	return e.ExtractTableFn(html)
}
