package trivia

// Paginate returns the 1-indexed page window of items. Pages past the end yield
// an empty, non-nil slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// NormalizePage maps a missing or non-positive page to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
