package service

import (
	"time"
)

// fixedCalendar pins "now" to 2026-10-19 12:00 UTC
func fixedCalendar() Calendar {
	return Calendar{
		Now: func() time.Time {
			return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		},
		Location: time.UTC,
	}
}

func userID(v int64) *UserID {
	id := UserID(v)
	return &id
}

func float(v float64) *float64 {
	return &v
}
