package main

import (
	"fmt"

	"github.com/fwojciec/siteatlas"
)

// Run executes the probe command.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	urls, err := deps.Prober.DiscoverURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}
