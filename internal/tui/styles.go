package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader   = lipgloss.Color("63")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("252")
	ColorSubtle   = lipgloss.Color("241")
	ColorInfo     = lipgloss.Color("39")
	ColorWarning  = lipgloss.Color("214")
	ColorCritical = lipgloss.Color("196")
	ColorBorder   = lipgloss.Color("240")
	ColorSelected = lipgloss.Color("57")
	ColorActive   = lipgloss.Color("229")
)

// borderPadding accounts for the left and right border of boxed content.
const borderPadding = 2

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorValue)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	CriticalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCritical)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2) //nolint:mnd // Box padding.

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorActive).
				Background(ColorSelected)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorSelected)

	ActiveButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInfo)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Faint(true)
)
