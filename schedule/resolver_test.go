package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/jmhodges/clock"
)

// Wednesday, noon. All resolver tests pin the clock here unless they
// say otherwise.
var wednesdayNoon = time.Date(2026, time.January, 7, 12, 0, 0, 0, time.Local)

func fakeResolver(t *testing.T, now time.Time) *Resolver {
	t.Helper()
	clk := clock.NewFake()
	clk.Set(now)
	return NewWithClock(clk)
}

func TestResolveSameDayLaterToday(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	at, err := r.Resolve("Wednesday", 15, 30)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := time.Date(2026, time.January, 7, 15, 30, 0, 0, time.Local)
	if !at.Equal(want) {
		t.Errorf("got %v, want %v", at, want)
	}
}

func TestResolveSameDayTimeAlreadyPassed(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	// One minute before the current time must land exactly one week out.
	at, err := r.Resolve("wednesday", 11, 59)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := time.Date(2026, time.January, 14, 11, 59, 0, 0, time.Local)
	if !at.Equal(want) {
		t.Errorf("got %v, want %v", at, want)
	}
}

func TestResolveLaterThisWeek(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	at, err := r.Resolve("FRIDAY", 9, 0)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := time.Date(2026, time.January, 9, 9, 0, 0, 0, time.Local)
	if !at.Equal(want) {
		t.Errorf("got %v, want %v", at, want)
	}
}

func TestResolveWeekWrapsAround(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	// Monday is behind Wednesday, so the result is next week's Monday.
	at, err := r.Resolve("Monday", 8, 15)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := time.Date(2026, time.January, 12, 8, 15, 0, 0, time.Local)
	if !at.Equal(want) {
		t.Errorf("got %v, want %v", at, want)
	}
}

func TestResolveNeverBeforeNow(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	days := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	for _, day := range days {
		for _, hm := range [][2]int{{0, 0}, {11, 59}, {12, 0}, {23, 59}} {
			at, err := r.Resolve(day, hm[0], hm[1])
			if err != nil {
				t.Fatalf("Resolve(%s, %d, %d) failed: %v", day, hm[0], hm[1], err)
			}
			if at.Before(wednesdayNoon) {
				t.Errorf("Resolve(%s, %d, %d) = %v, before now %v", day, hm[0], hm[1], at, wednesdayNoon)
			}
		}
	}
}

func TestResolveBadWeekday(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	for _, day := range []string{"", "Someday", "Wednes", "7"} {
		if _, err := r.Resolve(day, 10, 0); !errors.Is(err, ErrBadWeekday) {
			t.Errorf("Resolve(%q) err = %v, want ErrBadWeekday", day, err)
		}
	}
}

func TestResolveTimeOutOfRange(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	cases := [][2]int{{-1, 0}, {24, 0}, {10, -1}, {10, 60}}
	for _, hm := range cases {
		if _, err := r.Resolve("monday", hm[0], hm[1]); !errors.Is(err, ErrBadTime) {
			t.Errorf("Resolve(monday, %d, %d) err = %v, want ErrBadTime", hm[0], hm[1], err)
		}
	}
}

func TestResolveClockTime(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"07:30 PM", time.Date(2026, time.January, 7, 19, 30, 0, 0, time.Local)},
		{"7:30PM", time.Date(2026, time.January, 7, 19, 30, 0, 0, time.Local)},
		{"12:00 PM", time.Date(2026, time.January, 7, 12, 0, 0, 0, time.Local)},
		{"12:05 am", time.Date(2026, time.January, 14, 0, 5, 0, 0, time.Local)},
		{"11:59 AM", time.Date(2026, time.January, 14, 11, 59, 0, 0, time.Local)},
	}

	for _, tc := range cases {
		at, err := r.ResolveClockTime("Wednesday", tc.in)
		if err != nil {
			t.Fatalf("ResolveClockTime(%q) failed: %v", tc.in, err)
		}
		if !at.Equal(tc.want) {
			t.Errorf("ResolveClockTime(%q) = %v, want %v", tc.in, at, tc.want)
		}
	}
}

func TestResolveClockTimeMalformed(t *testing.T) {
	r := fakeResolver(t, wednesdayNoon)

	for _, in := range []string{"", "19:30", "7:3 PM", "07:30 XM", "007:30 PM", "13:00 PM", "0:30 AM"} {
		if _, err := r.ResolveClockTime("monday", in); !errors.Is(err, ErrBadClockTime) {
			t.Errorf("ResolveClockTime(%q) err = %v, want ErrBadClockTime", in, err)
		}
	}
}
