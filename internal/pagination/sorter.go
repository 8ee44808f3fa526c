package pagination

import (
	"slices"
	"sort"
	"strings"

	"github.com/rshade/userdir/internal/directory"
)

// SortKey names the column the users are sorted by. SortNone keeps fetch order.
type SortKey string

// Sortable keys.
const (
	SortNone  SortKey = ""
	SortName  SortKey = directory.ColumnName
	SortEmail SortKey = directory.ColumnEmail
)

// Direction is the sort direction.
type Direction string

// Sort directions.
const (
	SortAsc  Direction = "asc"
	SortDesc Direction = "desc"
)

// Indicator returns the arrow shown next to the active column title.
func (d Direction) Indicator() string {
	if d == SortDesc {
		return "▼"
	}
	return "▲"
}

// SortState is the active sort column and direction.
type SortState struct {
	Key       SortKey
	Direction Direction
}

// Active reports whether a sort column is set.
func (s SortState) Active() bool {
	return s.Key != SortNone
}

// Toggle applies a header click on column. Clicking the active column flips
// the direction, clicking another sortable column sorts it ascending, and
// clicking a column that is not sortable leaves the state unchanged.
func (s SortState) Toggle(column string) SortState {
	if !IsSortable(column) {
		return s
	}
	key := SortKey(column)
	if s.Key == key && s.Direction == SortAsc {
		return SortState{Key: key, Direction: SortDesc}
	}
	return SortState{Key: key, Direction: SortAsc}
}

// Sorter defines the interface for sorting users.
type Sorter interface {
	// Sort sorts a slice of users by the specified field and direction.
	Sort(users []directory.User, field string, dir Direction) []directory.User
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns a list of valid field names for sorting.
	GetValidFields() []string
}

// UserSorter implements Sorter over a whitelist of sortable columns.
type UserSorter struct {
	validFields map[string]bool
}

// NewUserSorter creates a UserSorter allowing name and email.
func NewUserSorter() *UserSorter {
	return &UserSorter{
		validFields: map[string]bool{
			string(SortName):  true,
			string(SortEmail): true,
		},
	}
}

//nolint:gochecknoglobals // Shared read-only whitelist.
var defaultSorter = NewUserSorter()

// IsSortable reports whether column is in the sortable whitelist.
func IsSortable(column string) bool {
	return defaultSorter.IsValidField(column)
}

// SortableFields returns the sortable columns in a stable order.
func SortableFields() []string {
	return defaultSorter.GetValidFields()
}

// IsValidField checks if the field is valid for sorting.
func (s *UserSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *UserSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a new slice ordered by field. Values are compared as plain
// strings; equal values keep their relative order in both directions.
// If field is not sortable the input is returned unchanged.
func (s *UserSorter) Sort(users []directory.User, field string, dir Direction) []directory.User {
	if !s.IsValidField(field) {
		return users
	}

	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b directory.User) int {
		av, _ := a.Field(field)
		bv, _ := b.Field(field)
		c := strings.Compare(av, bv)
		if dir == SortDesc {
			return -c
		}
		return c
	})
	return sorted
}

// SortUsers orders users by state using the default whitelist.
func SortUsers(users []directory.User, state SortState) []directory.User {
	if !state.Active() {
		return users
	}
	return defaultSorter.Sort(users, string(state.Key), state.Direction)
}
