// Package http provides the HTTP implementation of mensafeed.Fetcher.
// The menu page is server-rendered, so a plain GET without JavaScript
// execution is sufficient.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/openkassel/mensafeed"
)

// DefaultFetchTimeout bounds the single GET against the menu page.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements mensafeed.Fetcher at compile time.
var _ mensafeed.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves the menu page markup over HTTP.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page markup from the given URL. Any transport
// failure, timeout, or non-2xx status is an EUNAVAILABLE error; callers
// treat those as fatal before parsing starts.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", mensafeed.Errorf(mensafeed.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", mensafeed.Errorf(mensafeed.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", mensafeed.Errorf(mensafeed.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", mensafeed.Errorf(mensafeed.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}
