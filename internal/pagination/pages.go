package pagination

import (
	"strconv"
	"strings"
)

// TotalPages returns max(1, ceil(count/pageSize)). It is defined for every
// input: a non-positive count or page size yields 1.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize < 1 {
		return 1
	}
	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}
	return pages
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	switch {
	case page < MinPage:
		return MinPage
	case page > totalPages:
		return totalPages
	default:
		return page
	}
}

// offset returns the index of the first item of page.
func offset(page, pageSize int) int {
	if page < MinPage || pageSize < 1 {
		return 0
	}
	return (page - 1) * pageSize
}

// Slice returns items[(page-1)*pageSize : page*pageSize], truncated at the end
// of items. A page past the end yields an empty, non-nil slice.
func Slice[T any](items []T, page, pageSize int) []T {
	if pageSize < 1 || page < MinPage {
		return []T{}
	}
	start := offset(page, pageSize)
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// CoercePageInput interprets free-form page-jump input. An integer within
// [1, totalPages] is returned as is; anything else, including out of range
// values, becomes page 1. Values are not clamped to the nearest bound.
func CoercePageInput(input string, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || value < MinPage || value > totalPages {
		return MinPage
	}
	return value
}

// PrevPage returns page-1, or page unchanged on the first page.
func PrevPage(page int) int {
	if page > MinPage {
		return page - 1
	}
	return page
}

// NextPage returns page+1, or page unchanged on the last page.
func NextPage(page, totalPages int) int {
	if page < totalPages {
		return page + 1
	}
	return page
}
