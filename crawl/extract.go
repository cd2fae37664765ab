// Package crawl orchestrates site-map extraction, article materialization,
// and asset capture. It coordinates the Fetcher, the markup-parsing
// surface, and artifact storage without owning any of them.
package crawl

import (
	"context"
	"log/slog"

	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/goquery"
)

// Extractor discovers a website's navigation hierarchy by recursive
// descent from a root URL, driven by the tag/selector configuration in
// ExtractorOptions.
//
// The walk is depth-first. A fetch or parse failure below the root aborts
// only that branch: the failing category keeps an empty subtree and its
// siblings are still processed. A failure at the root fails the whole
// extraction.
type Extractor struct {
	Fetcher siteatlas.Fetcher

	// Limiter, when set, bounds fetch pressure per domain.
	Limiter *DomainLimiter

	// Logger receives branch-abort and revisit diagnostics.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// ExtractSiteMap runs the recursive extraction and returns the discovered
// tree. Options are validated up front; an EINVALID error means no
// network traffic happened.
func (e *Extractor) ExtractSiteMap(ctx context.Context, options *siteatlas.ExtractorOptions) (*siteatlas.SiteMap, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	visited := make(map[string]bool)
	categories, err := e.extractCategories(ctx, options, options.RootURL, nil, visited)
	if err != nil {
		return nil, err
	}

	return &siteatlas.SiteMap{RootURL: options.RootURL, Categories: categories}, nil
}

// extractCategories fetches one page and discovers the categories it links
// to. The parent is passed explicitly so a page with no category elements
// can fold its articles upward instead of producing a trivial empty
// category; it is nil only at the root. The visited set is threaded
// through the recursion as the cycle guard.
func (e *Extractor) extractCategories(
	ctx context.Context,
	options *siteatlas.ExtractorOptions,
	pageURL string,
	parent *siteatlas.Category,
	visited map[string]bool,
) ([]*siteatlas.Category, error) {
	visited[pageURL] = true

	markup, err := e.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	links, err := goquery.ScanLinks(markup, pageURL, options.CategoryTag, options.CategorySelectors)
	if err != nil {
		return nil, err
	}

	var categories []*siteatlas.Category
	for _, link := range links {
		if options.Excluded(link.URL) {
			continue
		}
		// Dedup by URL among siblings collected so far; first wins.
		if containsURL(categories, link.URL) {
			continue
		}

		category := &siteatlas.Category{Name: link.Text, URL: link.URL}

		// Articles come from the page that produced the category, with
		// hrefs resolved against the category's own URL.
		articles, err := e.scanArticles(markup, link.URL, options)
		if err != nil {
			return nil, err
		}
		category.Articles = articles

		switch {
		case visited[link.URL]:
			e.logger().Debug("revisit skipped", "url", link.URL, "page", pageURL)
		default:
			subcategories, err := e.extractCategories(ctx, options, link.URL, category, visited)
			if err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				e.logger().Warn("branch aborted",
					"url", link.URL,
					"category", category.Name,
					"err", err,
				)
			} else {
				category.Subcategories = subcategories
			}
		}

		categories = append(categories, category)
	}

	// Leaf-page policy: a page with no category elements folds its
	// articles into the parent instead of wrapping them in a new node.
	if len(categories) == 0 && parent != nil {
		articles, err := e.scanArticles(markup, pageURL, options)
		if err != nil {
			return nil, err
		}
		parent.Articles = append(parent.Articles, articles...)
	}

	return categories, nil
}

// scanArticles scans a page for article anchors, dropping excluded URLs.
func (e *Extractor) scanArticles(markup, baseURL string, options *siteatlas.ExtractorOptions) ([]*siteatlas.Article, error) {
	scanned, err := goquery.ScanArticles(markup, baseURL, options.ArticleTag, options.ArticleSelectors)
	if err != nil {
		return nil, err
	}

	articles := scanned[:0]
	for _, article := range scanned {
		if !options.Excluded(article.URL) {
			articles = append(articles, article)
		}
	}
	return articles, nil
}

func (e *Extractor) fetch(ctx context.Context, url string) (string, error) {
	if e.Limiter != nil {
		if err := e.Limiter.WaitURL(ctx, url); err != nil {
			return "", err
		}
	}
	return e.Fetcher.Fetch(ctx, url)
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

func containsURL(categories []*siteatlas.Category, url string) bool {
	for _, category := range categories {
		if category.URL == url {
			return true
		}
	}
	return false
}
