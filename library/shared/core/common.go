package core

import (
	"time"
)

// BookIDString represents a book identifier as entered by the librarian.
type BookIDString = string

// DateTS represents a calendar date. The zero value means "no date".
type DateTS = time.Time

// ToDate drops the time of day and normalizes to UTC, keeping the calendar date of t's own location.
func ToDate(t time.Time) DateTS {
	if t.IsZero() {
		return DateTS{}
	}

	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
