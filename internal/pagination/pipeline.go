package pagination

import "github.com/rshade/userdir/internal/directory"

// Result is the outcome of Apply.
type Result struct {
	// Items are the users on the resulting page.
	Items []directory.User

	// TotalItems is the number of users left after filtering.
	TotalItems int

	// TotalPages is max(1, ceil(TotalItems/PageSize)).
	TotalPages int

	// Page is the page Items were taken from, after clamping.
	Page int

	// PageSize is the page size used.
	PageSize int
}

// Empty reports whether the page has no users.
func (r Result) Empty() bool {
	return len(r.Items) == 0
}

// Apply runs filter -> sort -> paginate over users. The requested page is
// clamped into [1, TotalPages] so callers always get the page they will show.
// A nil users slice (nothing fetched yet) yields an empty first page.
func Apply(users []directory.User, p Params) Result {
	pageSize := p.PageSize
	if !IsValidPageSize(pageSize) {
		pageSize = DefaultPageSize
	}

	filtered := Filter(users, p.Query)
	sorted := SortUsers(filtered, p.Sort)
	total := TotalPages(len(sorted), pageSize)
	page := ClampPage(p.Page, total)

	return Result{
		Items:      Slice(sorted, page, pageSize),
		TotalItems: len(sorted),
		TotalPages: total,
		Page:       page,
		PageSize:   pageSize,
	}
}
