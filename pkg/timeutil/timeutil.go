// Package timeutil provides compact duration formatting for debug output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration the way the npm debug package does:
// sub-millisecond durations render as "0ms", and larger durations use the
// coarsest unit that keeps the number small (ms, s, m, h).
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Millisecond:
		return "0ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	default:
		return fmt.Sprintf("%.1fh", d.Hours())
	}
}
