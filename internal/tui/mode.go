package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain prints uncolored text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints lipgloss-styled text without an interactive program.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout terminal width, or defaultWidth if it
// cannot be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// DetectOutputMode picks the output mode for the current environment.
// plain always wins; forceColor yields styled output even without a TTY.
// NO_COLOR and TERM=dumb disable styling, CI disables interactivity.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, IsTTY())
}

func detectOutputMode(forceColor, noColor, plain, tty bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !tty {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
