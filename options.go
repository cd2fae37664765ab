package siteatlas

// ExtractorOptions is the declarative configuration for site-map
// extraction. Category and article links are located by CSS class
// selectors compiled against a tag, e.g. tag "a" with selector "cat"
// selects "a.cat".
type ExtractorOptions struct {
	RootURL           string   `json:"root_url"`
	ExcludedURLs      []string `json:"excluded_urls"`
	CategoryTag       string   `json:"category_tag"`
	CategorySelectors []string `json:"category_selectors"`
	ArticleTag        string   `json:"article_tag"`
	ArticleSelectors  []string `json:"article_selectors"`
}

// Validate returns an EINVALID error if the options cannot drive an
// extraction.
func (o *ExtractorOptions) Validate() error {
	if o.RootURL == "" {
		return Errorf(EINVALID, "extractor options: root URL required")
	}
	if o.CategoryTag == "" {
		return Errorf(EINVALID, "extractor options: category tag required")
	}
	if len(o.CategorySelectors) == 0 {
		return Errorf(EINVALID, "extractor options: at least one category selector required")
	}
	if o.ArticleTag == "" {
		return Errorf(EINVALID, "extractor options: article tag required")
	}
	if len(o.ArticleSelectors) == 0 {
		return Errorf(EINVALID, "extractor options: at least one article selector required")
	}
	return nil
}

// Excluded reports whether the URL is configured to be skipped.
func (o *ExtractorOptions) Excluded(url string) bool {
	for _, excluded := range o.ExcludedURLs {
		if excluded == url {
			return true
		}
	}
	return false
}
