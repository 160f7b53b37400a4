package utils

// Paginate slices data into the fixed-size window for the given 1-based page.
// Pages beyond the end (or before page 1) yield an empty slice; the utility
// never clamps the page number. Callers that change filters are responsible
// for resetting the page to 1.
func Paginate[T any](data []T, page, perPage int) []T {
	if perPage <= 0 || page < 1 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(data) {
		return []T{}
	}
	end := start + perPage
	if end > len(data) {
		end = len(data)
	}
	return data[start:end]
}

// TotalPages returns the number of fixed-size pages needed for count items
func TotalPages(count, perPage int) int {
	if perPage <= 0 || count <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}
