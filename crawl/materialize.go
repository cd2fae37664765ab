package crawl

import (
	"context"

	"github.com/fwojciec/siteatlas"
	"golang.org/x/sync/errgroup"
)

// DefaultContainerSelector locates the content container on article pages
// when the Materializer is not configured with one.
const DefaultContainerSelector = "div.page_text"

// Failure identifies one article that could not be materialized, with
// enough context to diagnose it.
type Failure struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// Report is the outcome of a materialization walk. Per-article failures
// are isolated: the walk continues past them and records them here.
type Report struct {
	Succeeded int       `json:"succeeded"`
	Failed    []Failure `json:"failed"`
}

// Materializer walks a site map, classifies every article's page content,
// writes one JSON artifact per article, and records each artifact in a
// PagesCache keyed by article identity.
type Materializer struct {
	Fetcher    siteatlas.Fetcher
	Classifier siteatlas.Classifier
	Artifacts  siteatlas.ArtifactWriter

	// ContainerSelector locates the article content container.
	// Defaults to DefaultContainerSelector.
	ContainerSelector string

	// Concurrency bounds the number of articles processed at once within
	// one category. Defaults to 4.
	Concurrency int
}

// articleResult carries one article's processing outcome back to the
// coordinating walk. Results are collected by position so artifact and
// cache order stay deterministic regardless of worker interleaving.
type articleResult struct {
	path     string
	captured string
	err      error
}

// Materialize walks the site map depth-first, writing a category's own
// articles before descending into its subcategories. It returns the cache
// of written artifacts and a report of per-article outcomes; the error is
// non-nil only when a category directory cannot be created, which aborts
// that category's subtree.
func (m *Materializer) Materialize(ctx context.Context, siteMap *siteatlas.SiteMap, exportDir string) (*siteatlas.PagesCache, *Report, error) {
	cache := siteatlas.NewPagesCache()
	report := &Report{}

	for _, category := range siteMap.Categories {
		if err := m.materializeCategory(ctx, category, exportDir, cache, report); err != nil {
			return cache, report, err
		}
	}
	return cache, report, nil
}

func (m *Materializer) materializeCategory(
	ctx context.Context,
	category *siteatlas.Category,
	parentDir string,
	cache *siteatlas.PagesCache,
	report *Report,
) error {
	dir, err := m.Artifacts.EnsureDir(parentDir, category.Name)
	if err != nil {
		return err
	}

	m.materializeArticles(ctx, category.Articles, dir, cache, report)

	for _, subcategory := range category.Subcategories {
		if err := m.materializeCategory(ctx, subcategory, dir, cache, report); err != nil {
			return err
		}
	}

	// A category with nothing under it is most likely an article page
	// itself. This mirrors Normalize for site maps that skipped it.
	if category.IsEmpty() {
		m.materializeArticles(ctx, []*siteatlas.Article{category.AsArticle()}, dir, cache, report)
	}

	return nil
}

// materializeArticles processes one category's articles with bounded
// concurrency, then applies results in position order.
func (m *Materializer) materializeArticles(
	ctx context.Context,
	articles []*siteatlas.Article,
	dir string,
	cache *siteatlas.PagesCache,
	report *Report,
) {
	if len(articles) == 0 {
		return
	}

	results := make([]articleResult, len(articles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency())
	for i, article := range articles {
		g.Go(func() error {
			results[i] = m.processArticle(gctx, article, dir)
			return nil
		})
	}
	_ = g.Wait()

	for i, article := range articles {
		result := results[i]
		if result.err != nil {
			report.Failed = append(report.Failed, Failure{
				Title:  article.Title,
				URL:    article.URL,
				Reason: result.err.Error(),
			})
			continue
		}
		article.HTML = result.captured
		cache.Save(article, result.path)
		report.Succeeded++
	}
}

// processArticle fetches, classifies, and persists a single article.
func (m *Materializer) processArticle(ctx context.Context, article *siteatlas.Article, dir string) articleResult {
	markup, err := m.Fetcher.Fetch(ctx, article.URL)
	if err != nil {
		return articleResult{err: err}
	}

	content, err := m.Classifier.Classify(markup, m.containerSelector())
	if err != nil {
		return articleResult{err: err}
	}

	captured, err := m.Classifier.ContainerMarkup(markup, m.containerSelector())
	if err != nil {
		return articleResult{err: err}
	}

	path, err := m.Artifacts.WritePageContent(dir, article.Title, content)
	if err != nil {
		return articleResult{err: err}
	}

	return articleResult{path: path, captured: captured}
}

func (m *Materializer) containerSelector() string {
	if m.ContainerSelector != "" {
		return m.ContainerSelector
	}
	return DefaultContainerSelector
}

func (m *Materializer) concurrency() int {
	if m.Concurrency > 0 {
		return m.Concurrency
	}
	return 4
}
