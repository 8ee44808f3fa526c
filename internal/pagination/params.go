package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Page size choices and defaults.
const (
	PageSizeSmall   = 5
	PageSizeMedium  = 10
	PageSizeLarge   = 15
	DefaultPageSize = PageSizeSmall
	DefaultPage     = 1
	MinPage         = 1
)

// PageSizes lists the selectable page sizes in display order.
//
//nolint:gochecknoglobals // Fixed enumeration.
var PageSizes = []int{PageSizeSmall, PageSizeMedium, PageSizeLarge}

// Common validation errors.
var (
	ErrInvalidPageSize   = errors.New("page-size must be one of 5, 10 or 15")
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// IsValidPageSize reports whether n is one of PageSizes.
func IsValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}

// NextPageSize returns the page size following current in PageSizes,
// wrapping around. An unknown size yields DefaultPageSize.
func NextPageSize(current int) int {
	for i, size := range PageSizes {
		if size == current {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return DefaultPageSize
}

// Params is the complete view state consumed by Apply.
type Params struct {
	// Query is the free-text search, matched case-insensitively.
	Query string

	// Sort is the active sort column and direction.
	Sort SortState

	// Page is the 1-based page number.
	Page int

	// PageSize is the number of users per page, one of PageSizes.
	PageSize int
}

// NewParams returns the initial view state: empty query, no sort, page 1,
// five users per page.
func NewParams() Params {
	return Params{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     SortState{Direction: SortAsc},
	}
}

// Validate checks the parameters for use from command-line flags.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if !IsValidPageSize(p.PageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Sort.Key != SortNone && !IsSortable(string(p.Sort.Key)) {
		return fmt.Errorf("%w: %q (valid fields: %s)",
			ErrInvalidSortField, p.Sort.Key, strings.Join(SortableFields(), ", "))
	}
	if p.Sort.Direction != SortAsc && p.Sort.Direction != SortDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.Sort.Direction)
	}
	return nil
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "name", "email:desc". The empty string means no sort.
// The field must be sortable.
func ParseSort(sortStr string) (SortState, error) {
	if strings.TrimSpace(sortStr) == "" {
		return SortState{Direction: SortAsc}, nil
	}

	var field, order string
	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = string(SortAsc)
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return SortState{}, fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return SortState{}, ErrEmptySortField
	}
	field = strings.ToLower(field)
	if !IsSortable(field) {
		return SortState{}, fmt.Errorf("%w: %q (valid fields: %s)",
			ErrInvalidSortField, field, strings.Join(SortableFields(), ", "))
	}

	dir := Direction(order)
	if dir != SortAsc && dir != SortDesc {
		return SortState{}, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return SortState{Key: SortKey(field), Direction: dir}, nil
}
