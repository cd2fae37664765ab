package main

import (
	"context"
	"io"

	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Fetcher    siteatlas.Fetcher
	Downloader siteatlas.Downloader
	Classifier siteatlas.Classifier
	Prober     siteatlas.SitemapProber
	Artifacts  siteatlas.ArtifactWriter
	Converter  siteatlas.Converter
	Caches     siteatlas.CacheStore
	Extractor  *crawl.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract     ExtractCmd     `cmd:"" help:"Extract a site map from a root URL"`
	Classify    ClassifyCmd    `cmd:"" help:"Classify the content of a single page"`
	Materialize MaterializeCmd `cmd:"" help:"Materialize a site map's articles to JSON artifacts"`
	Normalize   NormalizeCmd   `cmd:"" help:"Demote empty categories in a site map to articles"`
	Find        FindCmd        `cmd:"" help:"Find a category or article by URL suffix"`
	Capture     CaptureCmd     `cmd:"" help:"Download an article's image assets for offline use"`
	Bundle      BundleCmd      `cmd:"" help:"Package a site map into a hashed filesystem bundle"`
	Probe       ProbeCmd       `cmd:"" help:"List the URLs a site publishes via XML sitemaps"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Options   string  `arg:"" help:"Path to extractor options JSON"`
	Output    string  `short:"o" help:"Write the site map here instead of stdout"`
	Rate      float64 `default:"1.0" help:"Max requests per second per domain"`
	Retry     bool    `help:"Retry failed fetches with backoff"`
	Normalize bool    `help:"Normalize the site map before writing"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	URL      string `arg:"" help:"Page URL to classify"`
	Selector string `default:"div.page_text" help:"CSS selector of the content container"`
}

// MaterializeCmd is the "materialize" subcommand.
type MaterializeCmd struct {
	Sitemap     string `arg:"" help:"Path to a site map JSON file"`
	Dir         string `arg:"" help:"Export directory"`
	Selector    string `default:"div.page_text" help:"CSS selector of the content container"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent article limit per category"`
	Cache       string `help:"Persist the pages cache to this SQLite database"`
}

// NormalizeCmd is the "normalize" subcommand.
type NormalizeCmd struct {
	Sitemap string `arg:"" help:"Path to a site map JSON file"`
	Output  string `short:"o" help:"Write the normalized site map here instead of stdout"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Sitemap string `arg:"" help:"Path to a site map JSON file"`
	ID      int    `arg:"" help:"Numeric URL suffix to look for"`
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	Article string `arg:"" help:"Path to an article JSON file with captured markup"`
	Dir     string `arg:"" help:"Directory to store assets under"`
}

// BundleCmd is the "bundle" subcommand.
type BundleCmd struct {
	Sitemap  string `arg:"" help:"Path to a site map JSON file"`
	Dir      string `arg:"" help:"Bundle root directory"`
	Zip      string `help:"Also archive the bundle to this zip file"`
	Markdown bool   `help:"Write Markdown companions for captured articles"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL string `arg:"" help:"Site root URL"`
}
