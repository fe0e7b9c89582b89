package dto

import "time"

// CreateReminderRequest carries either an absolute date or a weekday
// plus 12-hour time pair ("Friday", "07:30 PM") that the server resolves
// itself. Text and timing rules are enforced by the lifecycle manager so
// every entry path shares them.
type CreateReminderRequest struct {
	UserID   string     `json:"userId"`
	Reminder string     `json:"reminder"`
	Date     *time.Time `json:"date,omitempty"`
	Day      string     `json:"day,omitempty"`
	Time     string     `json:"time,omitempty"`
	Tag      string     `json:"tag" binding:"omitempty,remindertag"`
}
