package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/siteatlas"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	markup, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	content, err := deps.Classifier.Classify(markup, c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(content, "", "    ")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
