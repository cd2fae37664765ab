package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/siteatlas"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Options)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read options file: %v\n", err)
		return err
	}

	var options siteatlas.ExtractorOptions
	if err := json.Unmarshal(data, &options); err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid options file: %v\n", err)
		return err
	}

	siteMap, err := deps.Extractor.ExtractSiteMap(deps.Ctx, &options)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	if c.Normalize {
		siteMap = siteatlas.Normalize(siteMap)
	}

	out, err := siteatlas.MarshalSiteMap(siteMap)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	if err := os.WriteFile(c.Output, out, 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot write site map: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote site map for %s to %s\n", siteMap.RootURL, c.Output)

	return nil
}
