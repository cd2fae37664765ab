// Package goquery provides the markup-parsing surface of siteatlas:
// content classification, link scanning for site-map extraction, and
// image-reference rewriting for offline bundles. All functions are pure
// with respect to the supplied markup; fetching is the Fetcher's job.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteatlas"
	"golang.org/x/net/html"
)

// Ensure Classifier implements siteatlas.Classifier at compile time.
var _ siteatlas.Classifier = (*Classifier)(nil)

// subheadingPattern matches numbered-outline paragraph text such as
// "1.2.3. Title", which is classified as a subheading rather than a
// paragraph.
var subheadingPattern = regexp.MustCompile(`^\s*\d+(\.\d+)*\.\s+.+`)

// headingTags are the element names classified as headings.
var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Classifier classifies a page's content container into typed elements.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify locates the container element by CSS selector and dispatches
// over its direct children in document order. Headings carry their tag
// name as the level attribute; tables containing at least one anchor are
// treated as link indexes, otherwise as opaque markup; paragraphs matching
// the numbered-outline pattern become subheadings; iframes become doc-view
// elements. Every other tag is ignored.
func (c *Classifier) Classify(markup, containerSelector string) (*siteatlas.PageContent, error) {
	container, err := findContainer(markup, containerSelector)
	if err != nil {
		return nil, err
	}

	content := &siteatlas.PageContent{Elements: []siteatlas.ContentElement{}}

	container.Children().Each(func(_ int, sel *goquery.Selection) {
		name := goquery.NodeName(sel)
		switch {
		case headingTags[name]:
			if text := normalizeText(sel); text != "" {
				content.Elements = append(content.Elements, siteatlas.ContentElement{
					Type:       siteatlas.ElementHeading,
					Content:    text,
					Attributes: map[string]string{"level": name},
				})
			}
		case name == "table":
			content.Elements = append(content.Elements, classifyTable(sel)...)
		case name == "p":
			if text := normalizeText(sel); text != "" {
				elementType := siteatlas.ElementParagraph
				if subheadingPattern.MatchString(text) {
					elementType = siteatlas.ElementSubheading
				}
				content.Elements = append(content.Elements, siteatlas.ContentElement{
					Type:       elementType,
					Content:    text,
					Attributes: map[string]string{},
				})
			}
		case name == "img":
			if src, ok := sel.Attr("src"); ok && src != "" {
				content.Elements = append(content.Elements, siteatlas.ContentElement{
					Type:    siteatlas.ElementImage,
					Content: src,
					Attributes: map[string]string{
						"alt":    sel.AttrOr("alt", ""),
						"title":  sel.AttrOr("title", ""),
						"width":  sel.AttrOr("width", ""),
						"height": sel.AttrOr("height", ""),
					},
				})
			}
		case name == "iframe":
			content.Elements = append(content.Elements, siteatlas.ContentElement{
				Type:       siteatlas.ElementDocView,
				Content:    normalizeText(sel),
				Attributes: map[string]string{"src": sel.AttrOr("src", "")},
			})
		}
	})

	return content, nil
}

// ContainerMarkup returns the rendered markup of the container element,
// for capture steps that keep the raw page content.
func (c *Classifier) ContainerMarkup(markup, containerSelector string) (string, error) {
	container, err := findContainer(markup, containerSelector)
	if err != nil {
		return "", err
	}
	return renderMarkup(container)
}

// classifyTable resolves the table dual role with a single presence check:
// a table containing any anchor is a link index and yields one link element
// per anchor (anchors missing an href or text are skipped); a table without
// anchors is opaque data carried as rendered markup.
func classifyTable(table *goquery.Selection) []siteatlas.ContentElement {
	anchors := table.Find("a")
	if anchors.Length() == 0 {
		markup, err := renderMarkup(table)
		if err != nil {
			markup = ""
		}
		return []siteatlas.ContentElement{{
			Type:       siteatlas.ElementTable,
			Content:    "",
			Attributes: map[string]string{"html": markup},
		}}
	}

	var elements []siteatlas.ContentElement
	anchors.Each(func(_ int, link *goquery.Selection) {
		href := link.AttrOr("href", "")
		text := normalizeText(link)
		if href == "" || text == "" {
			return
		}
		elements = append(elements, siteatlas.ContentElement{
			Type:    siteatlas.ElementLink,
			Content: href,
			Attributes: map[string]string{
				"text":   text,
				"title":  link.AttrOr("title", ""),
				"target": link.AttrOr("target", ""),
			},
		})
	})
	return elements
}

// findContainer parses markup and returns the single container matched by
// the selector. A selector that matches nothing is an ENOTFOUND error,
// distinct from a container that is merely empty.
func findContainer(markup, containerSelector string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINVALID, "parsing markup: %v", err)
	}

	container := doc.Find(containerSelector)
	if container.Length() == 0 {
		return nil, siteatlas.Errorf(siteatlas.ENOTFOUND, "container with selector %q not found", containerSelector)
	}
	return container.First(), nil
}

// normalizeText concatenates all text nodes under the selection in
// document order, collapsing runs of whitespace into single spaces and
// trimming the result.
func normalizeText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func collectText(node *html.Node, parts *[]string) {
	if node.Type == html.TextNode {
		if text := strings.TrimSpace(node.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}

// renderMarkup renders the selection's outer markup.
func renderMarkup(sel *goquery.Selection) (string, error) {
	var b strings.Builder
	for _, node := range sel.Nodes {
		if err := html.Render(&b, node); err != nil {
			return "", siteatlas.Errorf(siteatlas.EINTERNAL, "rendering markup: %v", err)
		}
	}
	return b.String(), nil
}
