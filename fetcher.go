package mensafeed

import "context"

// Fetcher retrieves raw page markup from a URL.
type Fetcher interface {
	// Fetch performs a single GET and returns the response body.
	// The context controls timeout and cancellation; a non-2xx status
	// is an error.
	Fetch(ctx context.Context, url string) (html string, err error)
}
