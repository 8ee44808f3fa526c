package pagination

// Meta contains metadata about paginated results.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds metadata for a pipeline result.
func NewMeta(r Result) Meta {
	return Meta{
		CurrentPage: r.Page,
		PageSize:    r.PageSize,
		TotalPages:  r.TotalPages,
		TotalItems:  r.TotalItems,
		HasPrevious: r.Page > MinPage,
		HasNext:     r.Page < r.TotalPages,
	}
}
