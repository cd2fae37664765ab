package siteatlas

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"
)

// CacheEntry links an article identity to its materialized artifact path.
type CacheEntry struct {
	Article *Article `json:"article"`
	Path    string   `json:"path"`
}

// PagesCache is an identity-keyed index from articles to locally
// materialized artifact paths, backed by ordered entries. It grows
// monotonically during one materialization run and is not durable unless
// explicitly persisted through a CacheStore.
//
// Writes are mutually exclusive per identity, so the cache is safe for the
// concurrent materialization walk.
type PagesCache struct {
	mu      sync.Mutex
	entries []CacheEntry
}

// NewPagesCache returns an empty cache.
func NewPagesCache() *PagesCache {
	return &PagesCache{}
}

// Save upserts an entry by article identity: an existing entry with
// matching (title, url) has its path replaced, otherwise a new entry is
// appended. Paths are stored in slash form for cross-platform stability.
func (c *PagesCache) Save(article *Article, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path = filepath.ToSlash(path)
	for i, entry := range c.entries {
		if entry.Article.Identity(article) {
			c.entries[i] = CacheEntry{Article: article, Path: path}
			return
		}
	}
	c.entries = append(c.entries, CacheEntry{Article: article, Path: path})
}

// Get returns the artifact path for an article identity, or false if the
// article has not been materialized. First match in insertion order wins.
func (c *PagesCache) Get(article *Article) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.entries {
		if entry.Article.Identity(article) {
			return entry.Path, true
		}
	}
	return "", false
}

// GetByURL returns the artifact path for the first entry whose article URL
// exactly matches url.
func (c *PagesCache) GetByURL(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.entries {
		if entry.Article.URL == url {
			return entry.Path, true
		}
	}
	return "", false
}

// GetByID returns the artifact path for the first entry whose article URL
// ends with the string form of id.
//
// This is a literal string-suffix match, not a numeric-boundary match:
// id 12 matches URLs ending in both ".../12" and ".../112". The permissive
// semantics are kept deliberately; see the test suite.
func (c *PagesCache) GetByID(id int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	suffix := strconv.Itoa(id)
	for _, entry := range c.entries {
		if hasSuffix(entry.Article.URL, suffix) {
			return entry.Path, true
		}
	}
	return "", false
}

// Entries returns a snapshot of the cache in insertion order.
func (c *PagesCache) Entries() []CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]CacheEntry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Len returns the number of entries.
func (c *PagesCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Restore replaces the cache contents with the given entries, preserving
// their order. Used when loading a persisted cache.
func (c *PagesCache) Restore(entries []CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make([]CacheEntry, len(entries))
	copy(c.entries, entries)
}

// CacheStore persists a PagesCache. The cache itself is in-memory only;
// durability is an explicit caller decision.
type CacheStore interface {
	// SaveCache persists all cache entries, replacing any previous state.
	SaveCache(ctx context.Context, cache *PagesCache) error

	// LoadCache restores a cache from storage, preserving entry order.
	LoadCache(ctx context.Context) (*PagesCache, error)
}
