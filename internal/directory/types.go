package directory

import "strconv"

// Column names shown for each user.
const (
	ColumnName    = "name"
	ColumnEmail   = "email"
	ColumnPhone   = "phone"
	ColumnCompany = "company"
)

// Columns lists the displayed columns in order.
//
//nolint:gochecknoglobals // Fixed display order.
var Columns = []string{ColumnName, ColumnEmail, ColumnPhone, ColumnCompany}

// missingValue is rendered for absent fields.
const missingValue = "-"

// Company is the employer of a User.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase,omitempty"`
	BS          string `json:"bs,omitempty"`
}

// Address is the postal address of a User.
type Address struct {
	Street  string `json:"street,omitempty"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
}

// User is a single record returned by the users API. Fields the API returns
// beyond these are ignored.
type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Website  string   `json:"website,omitempty"`
	Company  *Company `json:"company,omitempty"`
	Address  *Address `json:"address,omitempty"`
}

// CompanyName returns the company name, or "" when the record has none.
func (u User) CompanyName() string {
	if u.Company == nil {
		return ""
	}
	return u.Company.Name
}

// Field returns the raw value of a displayed column. ok is false for an
// unknown column.
func (u User) Field(column string) (string, bool) {
	switch column {
	case ColumnName:
		return u.Name, true
	case ColumnEmail:
		return u.Email, true
	case ColumnPhone:
		return u.Phone, true
	case ColumnCompany:
		return u.CompanyName(), true
	case "id":
		return strconv.Itoa(u.ID), true
	default:
		return "", false
	}
}

// DisplayField is Field with empty values replaced by a placeholder.
func (u User) DisplayField(column string) string {
	v, _ := u.Field(column)
	if v == "" {
		return missingValue
	}
	return v
}
