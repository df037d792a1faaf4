package mock

import "github.com/fwojciec/mdtools"

var _ mdtools.Converter = (*Converter)(nil)

// Converter is a mock implementation of mdtools.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
