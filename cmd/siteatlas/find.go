package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/siteatlas"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
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

	category, article := siteMap.FindByURLSuffix(c.ID)
	switch {
	case category != nil:
		fmt.Fprintf(deps.Stdout, "category  %s  %s\n", category.Name, category.URL)
	case article != nil:
		fmt.Fprintf(deps.Stdout, "article  %s  %s\n", article.Title, article.URL)
	default:
		err := siteatlas.Errorf(siteatlas.ENOTFOUND, "no category or article with URL suffix %d", c.ID)
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteatlas.ErrorMessage(err))
		return err
	}

	return nil
}
