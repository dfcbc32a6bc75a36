package shell

import "errors"

var (
	// ErrTableUnreadable marks a load that failed and was degraded to an empty table.
	ErrTableUnreadable = errors.New("table unreadable, continuing with an empty table")

	// ErrInvalidDate is returned for a date cell in none of the accepted layouts.
	ErrInvalidDate = errors.New("invalid date")
)

// IsDegradedLoad reports whether err contains a degraded load.
func IsDegradedLoad(err error) bool {
	return errors.Is(err, ErrTableUnreadable)
}
