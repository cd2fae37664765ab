package siteatlas

import "context"

// Fetcher retrieves raw markup from URLs. Transport failures and non-2xx
// responses surface as EUNAVAILABLE errors; the core performs no retry.
// Retry policy belongs to the caller (see crawl.RetryFetcher).
type Fetcher interface {
	// Fetch retrieves the markup at url. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Downloader retrieves raw bytes, used for capturing binary assets such
// as images referenced by captured markup.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}
