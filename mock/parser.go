package mock

import "github.com/fwojciec/mdtools"

var (
	_ mdtools.HeadingParser     = (*HeadingParser)(nil)
	_ mdtools.TableParser       = (*TableParser)(nil)
	_ mdtools.FrontMatterParser = (*FrontMatterParser)(nil)
)

// HeadingParser is a mock implementation of mdtools.HeadingParser.
type HeadingParser struct {
	ParseHeadingsFn func(source []byte) ([]mdtools.Heading, error)
}

func (p *HeadingParser) ParseHeadings(source []byte) ([]mdtools.Heading, error) {
	return p.ParseHeadingsFn(source)
}

// TableParser is a mock implementation of mdtools.TableParser.
type TableParser struct {
	ParseTableFn func(source []byte) (*mdtools.Table, error)
}

func (p *TableParser) ParseTable(source []byte) (*mdtools.Table, error) {
	return p.ParseTableFn(source)
}

// FrontMatterParser is a mock implementation of mdtools.FrontMatterParser.
type FrontMatterParser struct {
	SplitFn func(source []byte) (*mdtools.FrontMatter, []byte, error)
}

func (p *FrontMatterParser) Split(source []byte) (*mdtools.FrontMatter, []byte, error) {
	return p.SplitFn(source)
}
