package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/userdir/internal/pagination"
)

// PageChangedMsg asks the container to show Page.
type PageChangedMsg struct {
	Page int
}

// PageSizeChangedMsg asks the container to switch to PageSize. Page is
// always 1.
type PageSizeChangedMsg struct {
	PageSize int
	Page     int
}

const pageInputCharLimit = 6

// PageControl renders the page-size selector, page indicator and prev/next
// buttons. It owns no view state: key handling only produces
// PageChangedMsg and PageSizeChangedMsg for the container to apply. The
// page-jump input buffer is the one exception, kept while the input is open.
type PageControl struct {
	totalPages  int
	currentPage int
	pageSize    int

	input   textinput.Model
	editing bool
}

// NewPageControl creates a control for a single page of DefaultPageSize.
func NewPageControl() PageControl {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = pageInputCharLimit
	ti.Width = pageInputCharLimit
	return PageControl{
		totalPages:  1,
		currentPage: pagination.DefaultPage,
		pageSize:    pagination.DefaultPageSize,
		input:       ti,
	}
}

// SetState updates the values the control renders. totalPages below 1,
// as while loading, is treated as 1.
func (p *PageControl) SetState(totalPages, currentPage, pageSize int) {
	if totalPages < 1 {
		totalPages = 1
	}
	p.totalPages = totalPages
	p.currentPage = currentPage
	p.pageSize = pageSize
}

// TotalPages returns the rendered page count.
func (p PageControl) TotalPages() int { return p.totalPages }

// CurrentPage returns the rendered page.
func (p PageControl) CurrentPage() int { return p.currentPage }

// PageSize returns the rendered page size.
func (p PageControl) PageSize() int { return p.pageSize }

// Editing reports whether the page-jump input is open.
func (p PageControl) Editing() bool { return p.editing }

// HasPrev reports whether a previous page exists.
func (p PageControl) HasPrev() bool { return p.currentPage > pagination.MinPage }

// HasNext reports whether a next page exists.
func (p PageControl) HasNext() bool { return p.currentPage < p.totalPages }

// HandleKey processes a key press. It reports whether the key belonged to the
// control and returns the intent to deliver, if any. Prev and Next at a
// boundary are handled but produce no intent.
func (p *PageControl) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.editing {
		return p.handleInputKey(msg), true
	}

	switch msg.String() {
	case keyLeft, keyH, keyPrev:
		if !p.HasPrev() {
			return nil, true
		}
		return pageChanged(pagination.PrevPage(p.currentPage)), true
	case keyRight, keyL, keyNext:
		if !p.HasNext() {
			return nil, true
		}
		return pageChanged(pagination.NextPage(p.currentPage, p.totalPages)), true
	case keyPageSize:
		return pageSizeChanged(pagination.NextPageSize(p.pageSize)), true
	case keyJump:
		p.editing = true
		p.input.SetValue(strconv.Itoa(p.currentPage))
		p.input.CursorEnd()
		return p.input.Focus(), true
	default:
		return nil, false
	}
}

func (p *PageControl) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEnter:
		page := pagination.CoercePageInput(p.input.Value(), p.totalPages)
		p.closeInput()
		return pageChanged(page)
	case keyEsc:
		p.closeInput()
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *PageControl) closeInput() {
	p.editing = false
	p.input.Blur()
	p.input.SetValue("")
}

func pageChanged(page int) tea.Cmd {
	return func() tea.Msg { return PageChangedMsg{Page: page} }
}

func pageSizeChanged(size int) tea.Cmd {
	return func() tea.Msg {
		return PageSizeChangedMsg{PageSize: size, Page: pagination.DefaultPage}
	}
}

// View renders the control on one line, e.g. "[5 Items]  Page [2] of 3  < Prev  Next >".
func (p PageControl) View() string {
	size := LabelStyle.Render(fmt.Sprintf("[%d Items]", p.pageSize))

	var current string
	if p.editing {
		current = "[" + p.input.View() + "]"
	} else {
		current = ValueStyle.Render(fmt.Sprintf("[%d]", p.currentPage))
	}
	page := LabelStyle.Render("Page ") + current + LabelStyle.Render(fmt.Sprintf(" of %d", p.totalPages))

	prevStyle, nextStyle := DisabledButtonStyle, DisabledButtonStyle
	if p.HasPrev() {
		prevStyle = ActiveButtonStyle
	}
	if p.HasNext() {
		nextStyle = ActiveButtonStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		size, "  ",
		page, "  ",
		prevStyle.Render("< Prev"), "  ",
		nextStyle.Render("Next >"),
	)
}

// Update forwards non-key messages, such as cursor blinks, to the open
// page-jump input.
func (p *PageControl) Update(msg tea.Msg) tea.Cmd {
	if !p.editing {
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}
