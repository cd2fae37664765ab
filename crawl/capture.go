package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/goquery"
)

// CaptureFailure records one asset that could not be downloaded.
type CaptureFailure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// CaptureResult is the outcome of capturing an article's image assets.
type CaptureResult struct {
	// Markup is the article markup with src attributes rewritten to the
	// local relative paths of captured images.
	Markup string

	// Captured lists the local relative paths written, in source order.
	Captured []string

	// Failed lists assets that could not be captured. Their references in
	// the markup are left untouched.
	Failed []CaptureFailure
}

// PartialErr returns an EPARTIAL error describing the failed assets, or
// nil when every asset was captured.
func (r *CaptureResult) PartialErr() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return siteatlas.Errorf(siteatlas.EPARTIAL, "%d asset(s) failed to download", len(r.Failed))
}

// Capturer downloads the images referenced by an article's captured markup
// and rewrites the markup for offline use. A per-image download failure is
// non-fatal: the image is skipped, its original reference kept, and the
// run continues.
type Capturer struct {
	Downloader siteatlas.Downloader
	Artifacts  siteatlas.ArtifactWriter

	// Logger receives per-asset failure diagnostics.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// CaptureAssets extracts every <img src> from the article's captured
// markup, resolves each against the article URL, downloads them into
// dir/images under deterministic hashed names, and rewrites the markup's
// src attributes to the corresponding local relative paths. The article's
// captured markup is updated in place with the rewritten version.
func (c *Capturer) CaptureAssets(ctx context.Context, article *siteatlas.Article, dir string) (*CaptureResult, error) {
	if article.HTML == "" {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "article %q has no captured markup", article.URL)
	}

	urls, err := goquery.ExtractImageURLs(article.HTML, article.URL)
	if err != nil {
		return nil, err
	}

	result := &CaptureResult{Markup: article.HTML}
	if len(urls) == 0 {
		return result, nil
	}

	imagesDir, err := c.Artifacts.EnsureDir(dir, "images")
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string)
	for i, imageURL := range urls {
		if _, ok := mapping[imageURL]; ok {
			continue
		}

		data, err := c.Downloader.Download(ctx, imageURL)
		if err != nil {
			c.logger().Warn("asset download failed", "url", imageURL, "err", err)
			result.Failed = append(result.Failed, CaptureFailure{URL: imageURL, Reason: err.Error()})
			continue
		}

		name := AssetName(imageURL, i)
		if _, err := c.Artifacts.WriteFile(imagesDir, name, data); err != nil {
			result.Failed = append(result.Failed, CaptureFailure{URL: imageURL, Reason: err.Error()})
			continue
		}

		local := "images/" + name
		mapping[imageURL] = local
		result.Captured = append(result.Captured, local)
	}

	rewritten, err := goquery.RewriteImageSrcs(article.HTML, article.URL, mapping)
	if err != nil {
		return nil, err
	}
	result.Markup = rewritten
	article.HTML = rewritten

	return result, nil
}

// AssetName derives a short filesystem-safe name for an image from an
// 8-character hash of its absolute URL, disambiguated by the image's
// position in the run. The same URL at the same position always yields
// the same name, which keeps re-runs stable.
func AssetName(url string, index int) string {
	sum := fmt.Sprintf("%016x", xxhash.Sum64String(url))
	return fmt.Sprintf("img_%d_%s.jpg", index, sum[:8])
}

func (c *Capturer) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
