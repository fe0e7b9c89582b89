package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jmhodges/clock"
)

var (
	ErrBadWeekday   = errors.New("unrecognized weekday")
	ErrBadTime      = errors.New("time out of range")
	ErrBadClockTime = errors.New("malformed time string")
)

var weekdayIndex = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// Strict 12-hour clock: 1-2 digit hour, colon, 2-digit minute, optional
// space, AM/PM in any case.
var clockTimePattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s?(AM|PM)$`)

// Resolver converts a weekday name plus a time of day into the nearest
// future instant. All arithmetic is local wall-clock; no time zone
// conversion happens here.
type Resolver struct {
	clk clock.Clock
}

func New() *Resolver {
	return &Resolver{clk: clock.New()}
}

// NewWithClock injects the clock, used by tests and by anything that
// needs a deterministic "now".
func NewWithClock(clk clock.Clock) *Resolver {
	return &Resolver{clk: clk}
}

// Resolve maps a weekday name and a 24-hour time of day onto the next
// matching instant at or after now. When the requested time of day has
// already passed today, the result lands on the same weekday next week.
func (r *Resolver) Resolve(day string, hour, minute int) (time.Time, error) {
	target, ok := weekdayIndex[strings.ToLower(strings.TrimSpace(day))]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadWeekday, day)
	}
	if hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("%w: hour %d", ErrBadTime, hour)
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: minute %d", ErrBadTime, minute)
	}

	now := r.clk.Now()
	diff := (target - int(now.Weekday()) + 7) % 7

	day0 := now.AddDate(0, 0, diff)
	at := time.Date(day0.Year(), day0.Month(), day0.Day(), hour, minute, 0, 0, day0.Location())

	// Only possible when diff == 0 and the time of day already passed.
	if at.Before(now) {
		at = at.AddDate(0, 0, 7)
	}

	return at, nil
}

// ResolveClockTime is the 12-hour string entry path, e.g. "07:30 PM".
func (r *Resolver) ResolveClockTime(day, clockTime string) (time.Time, error) {
	m := clockTimePattern.FindStringSubmatch(strings.TrimSpace(clockTime))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadClockTime, clockTime)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadClockTime, clockTime)
	}

	mod := strings.ToUpper(m[3])
	if mod == "PM" && hour != 12 {
		hour += 12
	}
	if mod == "AM" && hour == 12 {
		hour = 0
	}

	return r.Resolve(day, hour, minute)
}
