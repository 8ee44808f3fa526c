// Package pagination implements the filter -> sort -> paginate pipeline applied
// to the in-memory users list.
//
// This package contains:
//   - Params: the view state the pipeline consumes (query, sort, page, page size)
//   - Filter, SortUsers and Slice: the three pure pipeline stages
//   - SortState.Toggle: the header-click sort policy over a whitelist of fields
//   - TotalPages, ClampPage and CoercePageInput: page arithmetic and input policy
//   - Meta: response metadata for paginated JSON output
//
// Every function is pure: inputs are never modified and results are fresh slices
// or sub-slices of the input.
package pagination
