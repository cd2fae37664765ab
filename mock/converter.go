package mock

import "github.com/fwojciec/siteatlas"

var _ siteatlas.Converter = (*Converter)(nil)

// Converter is a mock implementation of siteatlas.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
