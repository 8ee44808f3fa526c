package tui

// DeviceType selects the users layout.
type DeviceType int

const (
	// DeviceMobile renders users as stacked cards.
	DeviceMobile DeviceType = iota
	// DeviceDesktop renders users as a table.
	DeviceDesktop
)

// DefaultBreakpoint is the width, in columns, above which the table is used.
const DefaultBreakpoint = 100

// String returns the device name.
func (d DeviceType) String() string {
	if d == DeviceDesktop {
		return "desktop"
	}
	return "mobile"
}

// DeviceTypeFor classifies a terminal width. A non-positive breakpoint
// means DefaultBreakpoint.
func DeviceTypeFor(width, breakpoint int) DeviceType {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width > breakpoint {
		return DeviceDesktop
	}
	return DeviceMobile
}
