package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const loadingMessage = "Loading users..."

// LoadingState wraps the spinner shown while users are fetched.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading state with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorInfo)
	return &LoadingState{spinner: s, message: loadingMessage}
}

// Init starts the spinner animation.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// RenderLoading renders the spinner and its message.
func RenderLoading(l *LoadingState) string {
	if l == nil {
		return loadingMessage
	}
	return l.spinner.View() + " " + l.message
}
