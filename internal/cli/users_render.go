package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/userdir/internal/directory"
	"github.com/rshade/userdir/internal/pagination"
	"github.com/rshade/userdir/internal/tui"
)

// formatStyled is the lipgloss table used for non-interactive terminals.
const formatStyled = "styled"

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

const noUsersText = "No data found!"

// usersJSONOutput is the json document for one page.
type usersJSONOutput struct {
	Users []directory.User `json:"users"`
	Meta  pagination.Meta  `json:"meta"`
}

// ndjsonMeta is the first line of ndjson output.
type ndjsonMeta struct {
	Type string `json:"type"`
	pagination.Meta
}

// renderUsers writes one page of users in the given format.
func renderUsers(w io.Writer, format string, result pagination.Result) error {
	switch format {
	case formatJSON:
		return renderUsersJSON(w, result)
	case formatNDJSON:
		return renderUsersNDJSON(w, result)
	case formatStyled:
		return renderUsersStyled(w, result)
	case formatTable:
		return renderUsersTable(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func columnHeaders() []string {
	headers := make([]string, len(directory.Columns))
	for i, c := range directory.Columns {
		headers[i] = strings.ToUpper(c)
	}
	return headers
}

func userRow(u directory.User) []string {
	row := make([]string, len(directory.Columns))
	for i, c := range directory.Columns {
		row[i] = u.DisplayField(c)
	}
	return row
}

func pageFooter(result pagination.Result) string {
	return fmt.Sprintf("Page %d of %d (%d users, %d per page)",
		result.Page, result.TotalPages, result.TotalItems, result.PageSize)
}

func renderUsersTable(w io.Writer, result pagination.Result) error {
	if result.Empty() {
		fmt.Fprintln(w, noUsersText)
		fmt.Fprintln(w, pageFooter(result))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columnHeaders(), "\t"))
	for _, u := range result.Items {
		fmt.Fprintln(tw, strings.Join(userRow(u), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, pageFooter(result))
	return nil
}

func renderUsersStyled(w io.Writer, result pagination.Result) error {
	if result.Empty() {
		fmt.Fprintln(w, tui.WarningStyle.Render(noUsersText))
		fmt.Fprintln(w, tui.SubtleStyle.Render(pageFooter(result)))
		return nil
	}

	rows := make([][]string, len(result.Items))
	for i, u := range result.Items {
		rows[i] = userRow(u)
	}

	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tui.ColorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.HeaderStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(columnHeaders()...).
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, tui.SubtleStyle.Render(pageFooter(result)))
	return nil
}

func renderUsersJSON(w io.Writer, result pagination.Result) error {
	output := usersJSONOutput{
		Users: make([]directory.User, 0, len(result.Items)),
		Meta:  pagination.NewMeta(result),
	}
	output.Users = append(output.Users, result.Items...)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderUsersNDJSON writes a meta line followed by one user per line.
func renderUsersNDJSON(w io.Writer, result pagination.Result) error {
	encoder := json.NewEncoder(w)

	if err := encoder.Encode(ndjsonMeta{Type: "meta", Meta: pagination.NewMeta(result)}); err != nil {
		return fmt.Errorf("encoding NDJSON meta: %w", err)
	}
	for _, u := range result.Items {
		if err := encoder.Encode(u); err != nil {
			return fmt.Errorf("encoding NDJSON user: %w", err)
		}
	}
	return nil
}
