package siteatlas

// Normalize demotes empty leaf categories into synthetic articles on their
// parent: every category below the top level that has zero subcategories
// and zero articles becomes an Article (title = name, url = url, no
// captured content) appended to the parent's article list, and is removed
// from the parent's subcategory list.
//
// Top-level categories are never converted (no grandparent exists to
// receive them). The transform is an idempotent fixed point: normalizing
// an already-normalized site map is a no-op. The site map is modified in
// place and also returned for call chaining.
func Normalize(s *SiteMap) *SiteMap {
	for _, root := range s.Categories {
		normalizeCategory(root.Subcategories, root)
	}
	return s
}

// normalizeCategory processes the parent's subcategories parent-first.
// Iteration runs over a stable snapshot so that in-place removal of a
// demoted category cannot skip its siblings.
func normalizeCategory(target []*Category, parent *Category) {
	snapshot := make([]*Category, len(target))
	copy(snapshot, target)

	for _, category := range snapshot {
		if category.IsEmpty() {
			parent.Articles = append(parent.Articles, category.AsArticle())
			parent.Subcategories = remove(parent.Subcategories, category)
		} else {
			normalizeCategory(category.Subcategories, category)
		}
	}
}

func remove(categories []*Category, target *Category) []*Category {
	for i, category := range categories {
		if category == target {
			return append(categories[:i], categories[i+1:]...)
		}
	}
	return categories
}
