package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Keys

| Key | Action |
| --- | --- |
| ` + "`/`" + ` | search by name or email |
| ` + "`esc`" + ` | clear the search |
| ` + "`1` `2`" + ` | sort by name, email (again to reverse) |
| ` + "`←` `h` `[`" + ` | previous page |
| ` + "`→` `l` `]`" + ` | next page |
| ` + "`g`" + ` | jump to a page |
| ` + "`z`" + ` | cycle 5, 10, 15 users per page |
| ` + "`↑` `↓`" + ` | move the selection |
| ` + "`r`" + ` | refresh (cached for the stale time), or retry after a failed load |
| ` + "`R`" + ` | reload from the network |
| ` + "`?`" + ` | toggle this help |
| ` + "`q`" + ` | quit |

Click a column header to sort by it.
`

const helpMinWrap = 40

// renderHelp renders the key reference as terminal markdown. The raw
// markdown is returned if rendering fails.
func renderHelp(width int) string {
	wrap := max(width-borderPadding, helpMinWrap)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
