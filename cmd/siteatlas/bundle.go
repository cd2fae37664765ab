package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/fs"
)

// Run executes the bundle command.
func (c *BundleCmd) Run(deps *Dependencies) error {
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

	packager := &fs.Packager{}
	if c.Markdown {
		packager.Converter = deps.Converter
	}

	manifest, err := packager.Package(siteMap, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Packaged bundle %s to %s\n", manifest.ID, c.Dir)

	if c.Zip != "" {
		if err := packager.Archive(c.Dir, c.Zip); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Archived bundle to %s\n", c.Zip)
	}

	return nil
}
