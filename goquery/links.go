package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteatlas"
)

// Link is one anchor discovered on a page, with its href resolved to an
// absolute URL against the page that produced it.
type Link struct {
	URL  string
	Text string
}

// CompileSelector joins a tag and a CSS class into a "tag.class" selector,
// the shape extractor options are declared in.
func CompileSelector(tag, class string) string {
	return tag + "." + class
}

// ScanLinks selects elements matching each compiled tag.selector in turn
// and returns their links in document order per selector. Relative hrefs
// are resolved against baseURL; elements without an href are skipped.
// Deduplication and exclusion are the caller's concern.
func ScanLinks(markup, baseURL, tag string, selectors []string) ([]Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "parsing markup from %q: %v", baseURL, err)
	}

	var links []Link
	for _, selector := range selectors {
		doc.Find(CompileSelector(tag, selector)).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || href == "" {
				return
			}
			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}
			links = append(links, Link{URL: resolved, Text: normalizeText(sel)})
		})
	}
	return links, nil
}

// ScanArticles selects article anchors matching each compiled tag.selector
// and returns them as articles. An article's title comes from a nested
// ".title" sub-element's text, falling back to "Untitled" when no such
// sub-element exists.
func ScanArticles(markup, baseURL, tag string, selectors []string) ([]*siteatlas.Article, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "parsing markup from %q: %v", baseURL, err)
	}

	var articles []*siteatlas.Article
	for _, selector := range selectors {
		doc.Find(CompileSelector(tag, selector)).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || href == "" {
				return
			}
			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			title := "Untitled"
			if titleSel := sel.Find(".title"); titleSel.Length() > 0 {
				title = normalizeText(titleSel.First())
			}
			articles = append(articles, &siteatlas.Article{Title: title, URL: resolved})
		})
	}
	return articles, nil
}

// resolveURL resolves a relative href against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
