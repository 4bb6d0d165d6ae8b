package mock

import "github.com/openkassel/mensafeed"

var _ mensafeed.FeedBuilder = (*FeedBuilder)(nil)

// FeedBuilder is a mock implementation of mensafeed.FeedBuilder.
type FeedBuilder struct {
	BuildFn func(canteen string, days []*mensafeed.Day) (string, error)
}

func (b *FeedBuilder) Build(canteen string, days []*mensafeed.Day) (string, error) {
	return b.BuildFn(canteen, days)
}
