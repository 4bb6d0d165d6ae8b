package mock

import (
	"context"

	"github.com/openkassel/mensafeed"
)

var _ mensafeed.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mensafeed.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
