package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteatlas"
)

// Ensure RetryFetcher implements siteatlas.Fetcher at compile time.
var _ siteatlas.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher decorates a Fetcher with exponential-backoff retries.
// The extraction core itself never retries; wrapping the fetcher is how a
// caller opts in to a retry policy.
type RetryFetcher struct {
	Next siteatlas.Fetcher

	// Delays between attempts. Defaults to DefaultRetryDelays.
	Delays []time.Duration

	// Logger receives per-retry diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Fetch attempts the fetch up to len(Delays)+1 times, sleeping between
// attempts. Context cancellation wins over the backoff sleep.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	delays := f.Delays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		markup, err := f.Next.Fetch(ctx, url)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		f.logger().Debug("fetch retry", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the underlying fetcher.
func (f *RetryFetcher) Close() error {
	return f.Next.Close()
}

func (f *RetryFetcher) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}
