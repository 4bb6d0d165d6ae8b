package mensafeed

import "context"

// FeedWriter persists a rendered feed document.
type FeedWriter interface {
	// WriteFeed writes the document to path, creating parent
	// directories as needed.
	WriteFeed(ctx context.Context, path string, document string) error
}
