package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/userdir/internal/directory"
)

// cardHeight is the rendered height of one card: border, name, three
// fields, border.
const cardHeight = 6

// cardLabelWidth aligns the card field values.
const cardLabelWidth = 8

// renderCard renders one user as a bordered card for narrow terminals.
func renderCard(u directory.User, selected bool, width int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(u.DisplayField(directory.ColumnName)))
	for _, column := range []string{directory.ColumnEmail, directory.ColumnPhone, directory.ColumnCompany} {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", cardLabelWidth, strings.ToUpper(column))))
		b.WriteString(ValueStyle.Render(u.DisplayField(column)))
	}

	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	if w := width - borderPadding; w > 0 {
		style = style.Width(w)
	}
	return style.Render(b.String())
}
