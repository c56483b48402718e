package validator

import (
	"time"
	"unicode/utf8"
)

func EventName(name string) bool {
	return utf8.RuneCountInString(name) >= 1 && utf8.RuneCountInString(name) <= 255
}

func EventVenue(venue string) bool {
	return utf8.RuneCountInString(venue) >= 1 && utf8.RuneCountInString(venue) <= 255
}

// EventTimes requires a non-zero start that precedes the end.
func EventTimes(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return start.Before(end)
}
