package siteatlas

// Content element types emitted by classification.
const (
	ElementHeading    = "heading"
	ElementSubheading = "subheading"
	ElementParagraph  = "paragraph"
	ElementImage      = "image"
	ElementLink       = "link"
	ElementTable      = "table"
	ElementDocView    = "doc-view"
)

// ContentElement is one classified unit of a page's body content. Content
// holds the primary payload, whose meaning depends on the type (heading
// text, link href, image src). Attributes carry secondary metadata such as
// level, href text, alt, or dimensions.
type ContentElement struct {
	Type       string            `json:"type"`
	Content    string            `json:"content"`
	Attributes map[string]string `json:"attributes"`
}

// PageContent is the ordered sequence of content elements extracted from
// one page. Element order equals source document order; that order is a
// contract, not an artifact.
type PageContent struct {
	Elements []ContentElement `json:"elements"`
}
