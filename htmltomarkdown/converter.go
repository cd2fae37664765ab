// Package htmltomarkdown converts captured article markup to Markdown for
// human-readable companions in offline bundles.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/siteatlas"
)

// Ensure Converter implements siteatlas.Converter at compile time.
var _ siteatlas.Converter = (*Converter)(nil)

// Converter renders captured article markup as CommonMark with pipe-table
// support, since reference pages lean heavily on tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders the article markup as Markdown. Markup without any
// renderable content is an EINVALID error rather than an empty companion.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", siteatlas.Errorf(siteatlas.EINVALID, "empty article markup")
	}

	markdown, err := c.conv.ConvertString(html)
	if err != nil {
		return "", siteatlas.Errorf(siteatlas.EINTERNAL, "converting article markup: %v", err)
	}

	return strings.TrimRight(markdown, "\n") + "\n", nil
}
