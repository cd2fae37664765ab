package mock

import (
	"context"

	"github.com/fwojciec/siteatlas"
)

var _ siteatlas.SitemapProber = (*SitemapProber)(nil)

// SitemapProber is a mock implementation of siteatlas.SitemapProber.
type SitemapProber struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (p *SitemapProber) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return p.DiscoverURLsFn(ctx, baseURL)
}
