// Package query is a pure, stateless filter/search/pagination engine over
// already-loaded record slices. It never touches persistence; callers list
// first, then filter, then paginate.
package query

import "strings"

// Filter returns the subsequence of records for which keep reports true.
func Filter[T any](records []T, keep func(T) bool) []T {
	var out []T
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByField returns the records whose selected field exactly matches value.
// Used for role and category filtering.
func ByField[T any, V comparable](records []T, field func(T) V, value V) []T {
	return Filter(records, func(r T) bool {
		return field(r) == value
	})
}

// BySubstring returns the records whose selected field contains substr.
// The match is case-sensitive; used for identifier lookup.
func BySubstring[T any](records []T, field func(T) string, substr string) []T {
	return Filter(records, func(r T) bool {
		return strings.Contains(field(r), substr)
	})
}

// Paginate slices records into the zero-based page of the given size. A page
// beyond the available range yields an empty slice, never an error. Filtering
// always precedes pagination.
func Paginate[T any](records []T, pageIndex, pageSize int) []T {
	if pageIndex < 0 || pageSize <= 0 {
		return nil
	}

	start := pageIndex * pageSize
	if start >= len(records) {
		return nil
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// PageFor resolves the effective page index for a request. Changing a filter
// resets the page to 0 so a stale, now-out-of-range page is never shown.
func PageFor(requested int, filterChanged bool) int {
	if filterChanged || requested < 0 {
		return 0
	}
	return requested
}

// Pages returns the number of pages needed for total records of the given
// page size.
func Pages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
