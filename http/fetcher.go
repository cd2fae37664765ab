// Package http provides the HTTP-based implementations of
// siteatlas.Fetcher and siteatlas.Downloader. Fetches are static HTTP
// requests; client-side scripts are never executed.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/siteatlas"
)

// DefaultFetchTimeout is the default per-request timeout. A timeout is
// treated as a fetch failure like any other transport error.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements both retrieval interfaces at compile time.
var (
	_ siteatlas.Fetcher    = (*Fetcher)(nil)
	_ siteatlas.Downloader = (*Fetcher)(nil)
)

// Fetcher retrieves markup and raw assets over HTTP. It performs no retry;
// retry policy belongs to the caller.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
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

// Fetch retrieves the markup at the given URL. Transport failures and
// non-OK statuses surface as EUNAVAILABLE errors carrying the URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Download retrieves raw bytes, e.g. an image referenced by captured
// markup.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	return f.get(ctx, url)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "building request for %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EUNAVAILABLE, "fetching %q: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, siteatlas.Errorf(siteatlas.EUNAVAILABLE, "fetching %q: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EUNAVAILABLE, "reading body of %q: %v", url, err)
	}

	return body, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
