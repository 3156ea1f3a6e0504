package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses "HH:MM" or "HH:MM:SS" into a duration since
// midnight, used for the midnight offset and for times of day.
func ParseClock(s string) (time.Duration, error) {
	var layout string
	switch strings.Count(s, ":") {
	case 1:
		layout = "15:04"
	case 2:
		layout = "15:04:05"
	default:
		return 0, fmt.Errorf("could not parse time %q: expected HH:MM or HH:MM:SS", s)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("could not parse time %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// ParseInstant parses either an RFC3339 date/time, or a clock time
// which is placed on now's date. Used for --from and --at.
func ParseInstant(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(now.Location()), nil
	}
	clock, err := ParseClock(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse start date %q", s)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Add(clock), nil
}

// Midnight returns the start of t's calendar date, in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses "YYYY-MM-DD", "today", "yesterday", or "N days ago"
// into midnight of that date in now's location.
func ParseDate(s string, now time.Time) (time.Time, error) {
	today := Midnight(now)

	switch {
	case s == "today":
		return today, nil
	case s == "yesterday":
		return today.AddDate(0, 0, -1), nil
	case strings.HasSuffix(s, " days ago"):
		days, err := strconv.Atoi(strings.TrimSuffix(s, " days ago"))
		if err != nil || days < 0 {
			return time.Time{}, fmt.Errorf("could not parse date %q", s)
		}
		return today.AddDate(0, 0, -days), nil
	}

	t, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse date %q", s)
	}
	return t, nil
}
