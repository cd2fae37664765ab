package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteatlas"
)

// ExtractImageURLs returns the absolute URL of every <img src> in the
// markup, resolved against baseURL, in document order. Images without a
// src attribute are skipped.
func ExtractImageURLs(markup, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "parsing markup from %q: %v", baseURL, err)
	}

	var urls []string
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			return
		}
		if resolved := resolveURL(base, src); resolved != "" {
			urls = append(urls, resolved)
		}
	})
	return urls, nil
}

// RewriteImageSrcs replaces the src attribute of every image whose
// resolved absolute URL appears in mapping with the mapped local relative
// path. Images without a mapping entry keep their original reference.
//
// The markup is expected to be a captured container fragment; the rewrite
// returns the fragment, not a full document.
func RewriteImageSrcs(markup, baseURL string, mapping map[string]string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", siteatlas.Errorf(siteatlas.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", siteatlas.Errorf(siteatlas.EINVALID, "parsing markup from %q: %v", baseURL, err)
	}

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			return
		}
		resolved := resolveURL(base, src)
		if local, ok := mapping[resolved]; ok {
			sel.SetAttr("src", local)
		}
	})

	// goquery wraps fragments in a full document on parse; unwrap to the
	// body's inner markup to return what was given.
	fragment, err := doc.Find("body").Html()
	if err != nil {
		return "", siteatlas.Errorf(siteatlas.EINTERNAL, "rendering rewritten markup: %v", err)
	}
	return fragment, nil
}
