package goquery_test

import (
	"testing"

	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	t.Run("classifies direct children in document order", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><div class="page_text">
			<h2>Overview</h2>
			<p>Some intro text.</p>
			<img src="/images/fig1.png" alt="Figure 1" width="640" height="480">
			<table><tr><td><a href="/articles/12" title="Intro" target="_blank">Introduction</a></td></tr></table>
		</div></body></html>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 4)

		assert.Equal(t, siteatlas.ElementHeading, content.Elements[0].Type)
		assert.Equal(t, "Overview", content.Elements[0].Content)
		assert.Equal(t, "h2", content.Elements[0].Attributes["level"])

		assert.Equal(t, siteatlas.ElementParagraph, content.Elements[1].Type)
		assert.Equal(t, "Some intro text.", content.Elements[1].Content)

		assert.Equal(t, siteatlas.ElementImage, content.Elements[2].Type)
		assert.Equal(t, "/images/fig1.png", content.Elements[2].Content)
		assert.Equal(t, "Figure 1", content.Elements[2].Attributes["alt"])
		assert.Equal(t, "640", content.Elements[2].Attributes["width"])
		assert.Equal(t, "480", content.Elements[2].Attributes["height"])

		assert.Equal(t, siteatlas.ElementLink, content.Elements[3].Type)
		assert.Equal(t, "/articles/12", content.Elements[3].Content)
		assert.Equal(t, "Introduction", content.Elements[3].Attributes["text"])
		assert.Equal(t, "Intro", content.Elements[3].Attributes["title"])
		assert.Equal(t, "_blank", content.Elements[3].Attributes["target"])
	})

	t.Run("numbered paragraphs become subheadings", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text">
			<p>1.2. Scope</p>
			<p>10.1.3. Details</p>
			<p>1 Introduction</p>
			<p>Version 2.0 shipped.</p>
		</div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 4)

		assert.Equal(t, siteatlas.ElementSubheading, content.Elements[0].Type)
		assert.Equal(t, siteatlas.ElementSubheading, content.Elements[1].Type)
		assert.Equal(t, siteatlas.ElementParagraph, content.Elements[2].Type)
		assert.Equal(t, siteatlas.ElementParagraph, content.Elements[3].Type)
	})

	t.Run("empty headings and paragraphs are skipped", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text">
			<h1>   </h1>
			<p></p>
			<p>Kept.</p>
		</div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 1)
		assert.Equal(t, "Kept.", content.Elements[0].Content)
	})

	t.Run("all heading levels carry their tag name", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text">
			<h1>A</h1><h2>B</h2><h3>C</h3><h4>D</h4><h5>E</h5><h6>F</h6>
		</div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 6)
		for i, level := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
			assert.Equal(t, siteatlas.ElementHeading, content.Elements[i].Type)
			assert.Equal(t, level, content.Elements[i].Attributes["level"])
		}
	})

	t.Run("image without src is skipped", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text"><img alt="no source"><p>text</p></div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 1)
		assert.Equal(t, siteatlas.ElementParagraph, content.Elements[0].Type)
	})

	t.Run("table without anchors is opaque", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text"><table><tr><td>10</td><td>20</td></tr></table></div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 1)
		assert.Equal(t, siteatlas.ElementTable, content.Elements[0].Type)
		assert.Empty(t, content.Elements[0].Content)
		assert.Contains(t, content.Elements[0].Attributes["html"], "<td>10</td>")
	})

	t.Run("table with anchors yields one link per anchor", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text"><table>
			<tr><td><a href="/a/1">One</a></td></tr>
			<tr><td><a href="/a/2">Two</a></td></tr>
			<tr><td><a href="">Empty href</a></td></tr>
			<tr><td><a href="/a/3"></a></td></tr>
		</table></div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 2)
		assert.Equal(t, "/a/1", content.Elements[0].Content)
		assert.Equal(t, "One", content.Elements[0].Attributes["text"])
		assert.Equal(t, "/a/2", content.Elements[1].Content)
	})

	t.Run("iframes become doc-view elements", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text"><iframe src="https://example.com/viewer?doc=1"></iframe></div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 1)
		assert.Equal(t, siteatlas.ElementDocView, content.Elements[0].Type)
		assert.Equal(t, "https://example.com/viewer?doc=1", content.Elements[0].Attributes["src"])
	})

	t.Run("unknown tags are ignored", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text"><div>wrapper</div><span>aside</span><p>kept</p></div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 1)
		assert.Equal(t, "kept", content.Elements[0].Content)
	})

	t.Run("nested elements are not classified", func(t *testing.T) {
		t.Parallel()

		// Only direct children of the container count; the paragraph
		// inside the div is invisible to classification.
		markup := `<div class="page_text"><div><p>nested</p></div></div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		assert.Empty(t, content.Elements)
	})

	t.Run("whitespace is collapsed across text nodes", func(t *testing.T) {
		t.Parallel()

		markup := "<div class=\"page_text\"><p>  multiple\n\t spaced   <b>words</b>  here </p></div>"

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 1)
		assert.Equal(t, "multiple spaced words here", content.Elements[0].Content)
	})

	t.Run("container not found", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewClassifier().Classify("<div class=\"other\"></div>", "div.page_text")
		assert.Equal(t, siteatlas.ENOTFOUND, siteatlas.ErrorCode(err))
	})

	t.Run("empty container is a valid empty result", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewClassifier().Classify(`<div class="page_text"></div>`, "div.page_text")
		require.NoError(t, err)
		assert.Empty(t, content.Elements)
	})

	t.Run("first matching container wins", func(t *testing.T) {
		t.Parallel()

		markup := `<div class="page_text"><p>first</p></div><div class="page_text"><p>second</p></div>`

		content, err := goquery.NewClassifier().Classify(markup, "div.page_text")
		require.NoError(t, err)
		require.Len(t, content.Elements, 1)
		assert.Equal(t, "first", content.Elements[0].Content)
	})
}

func TestClassifier_ContainerMarkup(t *testing.T) {
	t.Parallel()

	t.Run("returns the container's rendered markup", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><div class="page_text"><p>content</p></div></body></html>`

		captured, err := goquery.NewClassifier().ContainerMarkup(markup, "div.page_text")
		require.NoError(t, err)
		assert.Contains(t, captured, `<div class="page_text">`)
		assert.Contains(t, captured, "<p>content</p>")
	})

	t.Run("container not found", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewClassifier().ContainerMarkup("<p>no container</p>", "div.page_text")
		assert.Equal(t, siteatlas.ENOTFOUND, siteatlas.ErrorCode(err))
	})
}
