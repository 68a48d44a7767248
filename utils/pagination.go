package utils

// DefaultPageSize is the fixed page size used by the feed views.
const DefaultPageSize = 10

// Paginate slices an already-fetched collection. Pages are 1-based. A page
// beyond the end yields an empty slice so the caller can disable the
// control instead of erroring.
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
	return items[start:end]
}

// PageCount returns the number of pages needed for n items.
func PageCount(n, pageSize int) int {
	if n <= 0 || pageSize < 1 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
