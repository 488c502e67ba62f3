package trivia

// ResolveType returns the display type of categoryID, or "" when no category
// matches. Stale references are expected and never fail a view.
func ResolveType(categories []Category, categoryID int) string {
	for _, c := range categories {
		if c.ID == categoryID {
			return c.Type
		}
	}
	return ""
}

func currentCategory(categories []Category, page []Question) string {
	if len(page) == 0 {
		return ""
	}
	return ResolveType(categories, page[0].Category)
}
