package siteatlas

import (
	"context"
	"encoding/json"
	"strconv"
)

// SiteMap is the full extracted hierarchy of a website plus its root URL.
// It is the sole root of the category tree and exists as an in-memory
// structure with JSON import/export; it is not a database and carries no
// transaction log.
type SiteMap struct {
	RootURL    string      `json:"root_url"`
	Categories []*Category `json:"categories"`
}

// MarshalSiteMap serializes a site map to indented JSON in the canonical
// wire shape: {root_url, categories:[{name, url, subcategories, articles}]}.
func MarshalSiteMap(s *SiteMap) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return nil, Errorf(EINTERNAL, "marshaling site map for %q: %v", s.RootURL, err)
	}
	return data, nil
}

// UnmarshalSiteMap deserializes a site map from its canonical JSON shape.
// The round trip through MarshalSiteMap preserves full structural fidelity.
func UnmarshalSiteMap(data []byte) (*SiteMap, error) {
	var s SiteMap
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, Errorf(EINVALID, "unmarshaling site map: %v", err)
	}
	return &s, nil
}

// FindByURLSuffix searches the tree depth-first for the first category or
// article whose URL ends with the string form of id. Exactly one of the
// returned values is non-nil on a match; both are nil when nothing matches.
//
// The match is a literal string-suffix comparison, not a numeric-boundary
// one: id 12 matches URLs ending in ".../12" and ".../112" alike. This
// mirrors the cache's GetByID semantics.
func (s *SiteMap) FindByURLSuffix(id int) (*Category, *Article) {
	suffix := strconv.Itoa(id)
	return findBySuffix(s.Categories, suffix)
}

func findBySuffix(categories []*Category, suffix string) (*Category, *Article) {
	for _, category := range categories {
		if hasSuffix(category.URL, suffix) {
			return category, nil
		}
		for _, article := range category.Articles {
			if hasSuffix(article.URL, suffix) {
				return nil, article
			}
		}
		if c, a := findBySuffix(category.Subcategories, suffix); c != nil || a != nil {
			return c, a
		}
	}
	return nil, nil
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// SitemapProber lists the URLs a site publishes through its XML sitemaps.
// It is an authoring aid for extractor options (seeding excluded_urls),
// not part of the extraction algorithm itself.
type SitemapProber interface {
	// DiscoverURLs finds all URLs from a site's sitemap. It first checks
	// robots.txt for sitemap directives, then falls back to /sitemap.xml.
	// Sitemap indexes are resolved recursively.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
