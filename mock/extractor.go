package mock

import "github.com/openkassel/mensafeed"

var _ mensafeed.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mensafeed.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mensafeed.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*mensafeed.ExtractResult, error) {
	return e.ExtractFn(html)
}
