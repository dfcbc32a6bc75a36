package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/aiswo/librarydesk/library/shared/core"
)

// DateLayout is the layout dates are written with.
const DateLayout = time.DateOnly

// acceptedDateLayouts are tried in order when reading a date cell.
// Single digit months and days are accepted, slashed dates are read month first.
var acceptedDateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
}

// FormatDate writes a date as YYYY-MM-DD, or "" for the zero date.
func FormatDate(d core.DateTS) string {
	if d.IsZero() {
		return ""
	}

	return d.Format(DateLayout)
}

// ParseDate reads a date written as YYYY-MM-DD, "YYYY-MM-DD HH:MM:SS" or RFC 3339.
func ParseDate(value string) (core.DateTS, error) {
	value = strings.TrimSpace(value)

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return core.ToDate(t), nil
		}
	}

	return core.DateTS{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// parseDateCell reads a stored date cell. Empty and unparseable cells both read as the zero date,
// so a single bad cell never makes the whole table unreadable.
func parseDateCell(value string) core.DateTS {
	if strings.TrimSpace(value) == "" {
		return core.DateTS{}
	}

	d, err := ParseDate(value)
	if err != nil {
		return core.DateTS{}
	}

	return d
}
