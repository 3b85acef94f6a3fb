package circulation

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates in import files and on
// the issue/return operations.
const DateLayout = "2006-01-02"

// ToLoanDate normalizes a time to a pure calendar date: midnight, UTC.
// All dates stored on loans go through this, so date arithmetic is always
// whole days and never affected by time zones or daylight saving.
func ToLoanDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD text into a normalized calendar date.
func ParseDate(text string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, errors.Join(ErrFormat, fmt.Errorf("cannot parse %q as a calendar date (expected YYYY-MM-DD)", text))
	}

	return ToLoanDate(parsed), nil
}

// DaysBetween returns the number of whole days from one calendar date to
// another. The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(ToLoanDate(to).Sub(ToLoanDate(from)).Hours() / 24)
}
