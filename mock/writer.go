package mock

import (
	"context"

	"github.com/openkassel/mensafeed"
)

var _ mensafeed.FeedWriter = (*FeedWriter)(nil)

// FeedWriter is a mock implementation of mensafeed.FeedWriter.
type FeedWriter struct {
	WriteFeedFn func(ctx context.Context, path string, document string) error
}

func (w *FeedWriter) WriteFeed(ctx context.Context, path string, document string) error {
	return w.WriteFeedFn(ctx, path, document)
}
