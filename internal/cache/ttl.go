package cache

import (
	"fmt"
	"strconv"
	"time"
)

// Stale-time bounds.
const (
	DefaultTTL = 5 * time.Minute
	MinTTL     = time.Second
	MaxTTL     = 24 * time.Hour
)

// ErrInvalidTTL is returned for a stale time outside [MinTTL, MaxTTL].
var ErrInvalidTTL = fmt.Errorf("TTL must be between %s and %s", MinTTL, MaxTTL)

// ValidateTTL checks d is within [MinTTL, MaxTTL].
func ValidateTTL(d time.Duration) error {
	if d < MinTTL || d > MaxTTL {
		return fmt.Errorf("%w: got %s", ErrInvalidTTL, d)
	}
	return nil
}

// ParseTTL reads whole seconds ("300") or a duration string ("5m",
// "1h30m") and checks the result with ValidateTTL.
func ParseTTL(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if seconds, atoiErr := strconv.Atoi(s); atoiErr == nil {
		d, err = time.Duration(seconds)*time.Second, nil
	}
	if err != nil {
		return 0, fmt.Errorf("invalid TTL format: %w", err)
	}
	if validErr := ValidateTTL(d); validErr != nil {
		return 0, validErr
	}
	return d, nil
}

// FormatDuration renders d compactly: "45s", "30m", "1h30m".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	h, m := int(d.Hours()), int(d.Minutes())%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}
