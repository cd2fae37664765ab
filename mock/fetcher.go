// Package mock provides function-field mock implementations of siteatlas
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/siteatlas"
)

var _ siteatlas.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of siteatlas.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ siteatlas.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of siteatlas.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}
