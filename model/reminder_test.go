package model

import (
	"testing"
	"time"
)

func TestParseTag(t *testing.T) {
	cases := []struct {
		in   string
		want Tag
	}{
		{"Work", TagWork},
		{"Health", TagHealth},
		{"General", TagGeneral},
		{"", TagGeneral},
		{"work", TagGeneral}, // tag values are case-sensitive on the wire
		{"Chores", TagGeneral},
	}

	for _, tc := range cases {
		if got := ParseTag(tc.in); got != tc.want {
			t.Errorf("ParseTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReminderDue(t *testing.T) {
	now := time.Now()
	r := &Reminder{Date: now.Add(time.Minute)}
	if r.Due(now) {
		t.Error("future reminder reported due")
	}
	r.Date = now.Add(-time.Minute)
	if !r.Due(now) {
		t.Error("past reminder not reported due")
	}
	r.Date = now
	if !r.Due(now) {
		t.Error("boundary instant not reported due")
	}
}
