package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/crawl"
)

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read article: %v\n", err)
		return err
	}

	var article siteatlas.Article
	if err := json.Unmarshal(data, &article); err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid article file: %v\n", err)
		return err
	}

	capturer := &crawl.Capturer{
		Downloader: deps.Downloader,
		Artifacts:  deps.Artifacts,
	}

	result, err := capturer.CaptureAssets(deps.Ctx, &article, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	for _, failure := range result.Failed {
		fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", failure.URL, failure.Reason)
	}
	fmt.Fprintf(deps.Stdout, "Captured %d asset(s), %d failed\n", len(result.Captured), len(result.Failed))

	// The article's markup now points at the local copies; persist it.
	updated, err := json.MarshalIndent(&article, "", "    ")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if err := os.WriteFile(c.Article, updated, 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot write article: %v\n", err)
		return err
	}

	return result.PartialErr()
}
