package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/crawl"
)

// Run executes the materialize command.
func (c *MaterializeCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Sitemap)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read site map: %v\n", err)
		return err
	}

	siteMap, err := siteatlas.UnmarshalSiteMap(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	materializer := &crawl.Materializer{
		Fetcher:           deps.Fetcher,
		Classifier:        deps.Classifier,
		Artifacts:         deps.Artifacts,
		ContainerSelector: c.Selector,
		Concurrency:       c.Concurrency,
	}

	cache, report, err := materializer.Materialize(deps.Ctx, siteMap, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	for _, failure := range report.Failed {
		fmt.Fprintf(deps.Stderr, "  skip %s (%s): %s\n", failure.Title, failure.URL, failure.Reason)
	}
	fmt.Fprintf(deps.Stdout, "Materialized %d article(s), %d failed\n", report.Succeeded, len(report.Failed))

	if deps.Caches != nil {
		if err := deps.Caches.SaveCache(deps.Ctx, cache); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d cache entries\n", cache.Len())
	}

	return nil
}
