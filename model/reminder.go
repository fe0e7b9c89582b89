package model

import "time"

type Tag string

const (
	TagWork     Tag = "Work"
	TagPersonal Tag = "Personal"
	TagHealth   Tag = "Health"
	TagShopping Tag = "Shopping"
	TagStudy    Tag = "Study"
	TagGeneral  Tag = "General"
)

var allTags = []Tag{TagWork, TagPersonal, TagHealth, TagShopping, TagStudy, TagGeneral}

// ParseTag maps the wire value onto the closed tag set. Anything
// unknown (including the empty string) falls back to General.
func ParseTag(s string) Tag {
	for _, t := range allTags {
		if string(t) == s {
			return t
		}
	}
	return TagGeneral
}

func ValidTag(s string) bool {
	for _, t := range allTags {
		if string(t) == s {
			return true
		}
	}
	return false
}

type Reminder struct {
	ReminderID string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	Reminder   string    `bson:"reminder" json:"reminder" binding:"required"`
	Date       time.Time `bson:"date" json:"date"`
	Tag        Tag       `bson:"tag" json:"tag"`
}

// Due reports whether the reminder's instant has passed. Due reminders
// stay in the collection until the user deletes them.
func (r *Reminder) Due(now time.Time) bool {
	return !r.Date.After(now)
}
