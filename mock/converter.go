package mock

import "github.com/openkassel/mensafeed"

var _ mensafeed.Converter = (*Converter)(nil)

// Converter is a mock implementation of mensafeed.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
