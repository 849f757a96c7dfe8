package dateutil

import (
	"fmt"
	"time"

	"github.com/kpeters/hard75/internal/constants"
)

// timestampLayouts are the accepted layouts for workout/photo timestamps.
// Stored values may carry a zone offset or be bare local timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date formats a time as a YYYY-MM-DD calendar date.
func Date(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Yesterday returns the calendar date one day before t.
func Yesterday(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}

// DaysBetween returns the number of whole days from start to end.
// Both arguments are YYYY-MM-DD dates.
func DaysBetween(start, end string) (int, error) {
	s, err := time.Parse(constants.DateFormat, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(constants.DateFormat, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return int(e.Sub(s).Hours() / 24), nil
}

// ChallengeDay returns the 1-based challenge day number for a challenge
// that started on startDate, as of the given time.
func ChallengeDay(startDate string, now time.Time) (int, error) {
	days, err := DaysBetween(startDate, Date(now))
	if err != nil {
		return 0, err
	}
	return days + 1, nil
}

// ParseTimestamp parses a stored workout/photo timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, firstErr)
}

// FormatTimestamp renders a time in the stored timestamp form.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
