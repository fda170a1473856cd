package services

import "strings"

// DefaultRowsPerPage is the number of table rows on one printed page.
const DefaultRowsPerPage = 12

// EmptyPolicy decides what an invoice without rows prints.
type EmptyPolicy string

const (
	// EmptyBlankPage prints a single page of filler rows carrying the
	// (zero) totals and footer.
	EmptyBlankPage EmptyPolicy = "blank_page"
	// EmptyNoPages prints nothing.
	EmptyNoPages EmptyPolicy = "no_pages"
)

// ParseEmptyPolicy maps a config value onto an EmptyPolicy, defaulting to
// EmptyBlankPage.
func ParseEmptyPolicy(s string) EmptyPolicy {
	if EmptyPolicy(strings.ToLower(strings.TrimSpace(s))) == EmptyNoPages {
		return EmptyNoPages
	}
	return EmptyBlankPage
}

// Paginate slices rows into consecutive pages of at most capacity rows,
// preserving order. A capacity below 1 means DefaultRowsPerPage. Empty input
// yields no pages.
func Paginate[T any](rows []T, capacity int) [][]T {
	if capacity < 1 {
		capacity = DefaultRowsPerPage
	}
	if len(rows) == 0 {
		return nil
	}

	pages := make([][]T, 0, (len(rows)+capacity-1)/capacity)
	for start := 0; start < len(rows); start += capacity {
		end := start + capacity
		if end > len(rows) {
			end = len(rows)
		}
		pages = append(pages, rows[start:end:end])
	}
	return pages
}
