package pagination

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/rshade/userdir/internal/directory"
)

// SearchFields lists the columns matched by Filter.
//
//nolint:gochecknoglobals // Fixed search surface.
var SearchFields = []string{directory.ColumnName, directory.ColumnEmail}

// Filter keeps the users whose name or email contains query, ignoring case.
// An empty query returns users unchanged.
func Filter(users []directory.User, query string) []directory.User {
	if query == "" {
		return users
	}

	fold := cases.Fold()
	needle := fold.String(query)

	filtered := make([]directory.User, 0, len(users))
	for _, u := range users {
		if matches(fold, u, needle) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func matches(fold cases.Caser, u directory.User, needle string) bool {
	for _, field := range SearchFields {
		value, _ := u.Field(field)
		if strings.Contains(fold.String(value), needle) {
			return true
		}
	}
	return false
}
