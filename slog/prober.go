package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteatlas"
)

// Ensure LoggingProber implements siteatlas.SitemapProber.
var _ siteatlas.SitemapProber = (*LoggingProber)(nil)

// LoggingProber wraps a SitemapProber with discovery logging.
type LoggingProber struct {
	next   siteatlas.SitemapProber
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next siteatlas.SitemapProber, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped prober and logs the operation.
func (p *LoggingProber) DiscoverURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.DiscoverURLs(ctx, baseURL)
}
