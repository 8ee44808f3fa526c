package tui

// ViewState is the display state of the users view.
type ViewState int

const (
	// ViewStateLoading is shown until the fetch completes.
	ViewStateLoading ViewState = iota
	// ViewStateList is the loaded state, populated or empty.
	ViewStateList
	// ViewStateError is shown when the fetch failed.
	ViewStateError
	// ViewStateQuitting is entered once the user quits.
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
