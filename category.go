package siteatlas

// Category is a navigational tree node that may contain further categories
// and/or leaf articles. Categories form a proper tree: a child belongs to
// exactly one parent and nodes hold no parent back-pointers. Transforms
// that need to mutate a parent from within a child's recursion receive the
// parent explicitly through the call.
type Category struct {
	Name          string      `json:"name"`
	URL           string      `json:"url"`
	Subcategories []*Category `json:"subcategories"`
	Articles      []*Article  `json:"articles"`
}

// IsEmpty reports whether the category has neither subcategories nor
// articles. Empty categories below the top level are demoted to articles
// by Normalize.
func (c *Category) IsEmpty() bool {
	return len(c.Subcategories) == 0 && len(c.Articles) == 0
}

// AsArticle converts the category into a synthetic article carrying the
// category's name and URL with no captured content.
func (c *Category) AsArticle() *Article {
	return &Article{Title: c.Name, URL: c.URL}
}

// Validate returns an error if the category is missing required fields.
func (c *Category) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "category name required")
	}
	if c.URL == "" {
		return Errorf(EINVALID, "category URL required")
	}
	return nil
}
