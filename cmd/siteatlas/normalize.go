package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/siteatlas"
)

// Run executes the normalize command.
func (c *NormalizeCmd) Run(deps *Dependencies) error {
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

	out, err := siteatlas.MarshalSiteMap(siteatlas.Normalize(siteMap))
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
	fmt.Fprintf(deps.Stdout, "Wrote normalized site map to %s\n", c.Output)

	return nil
}
