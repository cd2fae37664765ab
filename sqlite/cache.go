package sqlite

import (
	"context"

	"github.com/fwojciec/siteatlas"
)

// Compile-time interface verification.
var _ siteatlas.CacheStore = (*CacheStore)(nil)

// CacheStore persists a PagesCache. Entries are keyed by article identity
// (title, url) and ordered by insertion position so a loaded cache
// preserves first-match lookup semantics.
type CacheStore struct {
	db *DB
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(db *DB) *CacheStore {
	return &CacheStore{db: db}
}

// SaveCache persists all cache entries, replacing any previous state.
func (s *CacheStore) SaveCache(ctx context.Context, cache *siteatlas.PagesCache) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pages_cache`); err != nil {
		return siteatlas.Errorf(siteatlas.EINTERNAL, "clearing pages cache: %v", err)
	}

	for position, entry := range cache.Entries() {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO pages_cache (title, url, path, position)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (title, url) DO UPDATE SET path = excluded.path, position = excluded.position
		`, entry.Article.Title, entry.Article.URL, entry.Path, position)
		if err != nil {
			return siteatlas.Errorf(siteatlas.EINTERNAL, "persisting cache entry for %q: %v", entry.Article.URL, err)
		}
	}

	return nil
}

// LoadCache restores a cache from storage, preserving entry order.
func (s *CacheStore) LoadCache(ctx context.Context) (*siteatlas.PagesCache, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, url, path
		FROM pages_cache
		ORDER BY position
	`)
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINTERNAL, "loading pages cache: %v", err)
	}
	defer rows.Close()

	var entries []siteatlas.CacheEntry
	for rows.Next() {
		var title, url, path string
		if err := rows.Scan(&title, &url, &path); err != nil {
			return nil, siteatlas.Errorf(siteatlas.EINTERNAL, "scanning cache entry: %v", err)
		}
		entries = append(entries, siteatlas.CacheEntry{
			Article: &siteatlas.Article{Title: title, URL: url},
			Path:    path,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINTERNAL, "loading pages cache: %v", err)
	}

	cache := siteatlas.NewPagesCache()
	cache.Restore(entries)
	return cache, nil
}
