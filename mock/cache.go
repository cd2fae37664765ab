package mock

import (
	"context"

	"github.com/fwojciec/siteatlas"
)

var _ siteatlas.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of siteatlas.CacheStore.
type CacheStore struct {
	SaveCacheFn func(ctx context.Context, cache *siteatlas.PagesCache) error
	LoadCacheFn func(ctx context.Context) (*siteatlas.PagesCache, error)
}

func (s *CacheStore) SaveCache(ctx context.Context, cache *siteatlas.PagesCache) error {
	return s.SaveCacheFn(ctx, cache)
}

func (s *CacheStore) LoadCache(ctx context.Context) (*siteatlas.PagesCache, error) {
	return s.LoadCacheFn(ctx)
}
