package domain

import (
	"time"
)

// DiaryEntry is one day's diary record. Each user may have at most one
// entry per calendar date, enforced by a (user_id, date) unique constraint.
type DiaryEntry struct {
	ID        int64
	UserID    string
	Date      time.Time // calendar date, time part is always midnight UTC
	Title     string
	One       string // one-line summary shown in list views
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
