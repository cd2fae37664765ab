package siteatlas

// Article is a leaf content page in a site's navigation tree.
//
// Identity is the (Title, URL) pair: two articles with equal identity are
// the same entity regardless of any captured markup. The HTML field is
// empty at extraction time and may be set later by a capture step.
type Article struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	HTML  string `json:"html,omitempty"`
}

// Identity reports whether two articles refer to the same entity.
// Captured markup is deliberately excluded from the comparison.
func (a *Article) Identity(other *Article) bool {
	return a.Title == other.Title && a.URL == other.URL
}

// Validate returns an error if the article is missing identity fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}
