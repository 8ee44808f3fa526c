package tui

// Key names as reported by tea.KeyMsg.String().
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keyHelp     = "?"
	keyRefresh  = "r"
	keyReload   = "R"
	keyPageSize = "z"
	keyJump     = "g"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyPrev     = "["
	keyNext     = "]"
)

// Layout defaults used before the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 30
	minHeight     = 5
)

// Search input limits.
const (
	filterInputCharLimit = 64
	filterInputWidth     = 32
)
