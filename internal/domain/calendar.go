package domain

import (
	"time"
)

// CalendarMark is the mood recorded for one (user, date) pair. Color and Tag
// are written independently: updating one must never clobber the other.
type CalendarMark struct {
	UserID    string
	Date      time.Time
	Color     *string
	Tag       *string
	UpdatedAt time.Time
}
