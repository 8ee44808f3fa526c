package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/userdir/internal/pagination"
)

const (
	titleText      = "User Directory"
	errorText      = "Error loading user!"
	emptyText      = "No data found!"
	errorFace      = "(x_x)"
	emptyFace      = "(o_o)"
	searchPrompt   = "Search: "
	searchHint     = "Press / to search by name or email"
	listHelpText   = "[/] Search  [1-4] Sort  [←/→] Page  [g] Jump  [z] Page size  [r] Refresh  [?] Help  [q] Quit"
	errorHelpText  = "[r] Retry  [q] Quit"
	refreshingText = "Refreshing..."
)

// View renders the current view.
func (m *UsersModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}
	if m.showHelp {
		return renderHelp(m.width)
	}

	// The pager is rendered in every state, with one page while loading or
	// after an error.
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderSearch(),
		m.renderBody(),
		"",
		m.pager.View(),
		m.renderHelpLine(),
	)
}

func (m *UsersModel) renderTitle() string {
	title := HeaderStyle.Render(titleText) + "  " + SubtleStyle.Render(m.statusText())
	if m.refreshing {
		title += "  " + InfoStyle.Render(refreshingText)
	}
	return title
}

// statusText summarizes the loaded set, e.g. "2 of 12 users | sorted by name ▲".
func (m *UsersModel) statusText() string {
	switch m.state {
	case ViewStateLoading:
		return "loading"
	case ViewStateError:
		return "load failed"
	}

	var status string
	if m.params.Query != "" {
		status = m.printer.Sprintf("%d of %d users", m.result.TotalItems, len(m.users))
	} else {
		status = m.printer.Sprintf("%d users", m.result.TotalItems)
	}
	if m.params.Sort.Active() {
		status += " | sorted by " + sortLabel(m.params.Sort)
	}
	return status
}

func (m *UsersModel) renderSearch() string {
	switch {
	case m.showSearch:
		return LabelStyle.Render(searchPrompt) + m.search.View()
	case m.params.Query != "":
		return LabelStyle.Render(searchPrompt) + ValueStyle.Render(m.params.Query) +
			SubtleStyle.Render("  (esc to clear)")
	default:
		return SubtleStyle.Render(searchHint)
	}
}

func (m *UsersModel) renderBody() string {
	switch m.state {
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateError:
		return renderPlaceholder(errorFace, CriticalStyle.Render(errorText))
	case ViewStateList:
		if m.result.Empty() {
			return renderPlaceholder(emptyFace, WarningStyle.Render(emptyText))
		}
		if m.device == DeviceDesktop {
			return m.table.View()
		}
		return m.cards.View()
	default:
		return ""
	}
}

func (m *UsersModel) renderHelpLine() string {
	if m.state == ViewStateError {
		return SubtleStyle.Render(errorHelpText)
	}
	return SubtleStyle.Render(listHelpText)
}

// renderPlaceholder frames a face and a message, used for the error and
// empty states.
func renderPlaceholder(face, text string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, face, "", text))
}

// columnTitle upper-cases a column name and appends the sort arrow when it
// is the active sort column.
func columnTitle(column string, s pagination.SortState) string {
	title := strings.ToUpper(column)
	if s.Active() && string(s.Key) == column {
		title += " " + s.Direction.Indicator()
	}
	return title
}

func sortLabel(s pagination.SortState) string {
	return string(s.Key) + " " + s.Direction.Indicator()
}
