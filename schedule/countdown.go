package schedule

import (
	"fmt"
	"strings"
	"time"
)

// RemainingSeconds is the whole-second countdown value for a reminder.
// It never goes negative; a past instant reads as zero.
func RemainingSeconds(dueAt, now time.Time) int64 {
	d := dueAt.Sub(now)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}

// FormatRemaining renders seconds as "1h 1m 1s". Zero-value hour and
// minute segments are omitted, the seconds segment never is.
func FormatRemaining(totalSeconds int64) string {
	if totalSeconds <= 0 {
		return "0s"
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes > 0 || hours > 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}
	fmt.Fprintf(&b, "%ds", seconds)

	return strings.TrimSpace(b.String())
}
