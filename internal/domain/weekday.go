package domain

import (
	"fmt"
	"strings"
	"time"
)

// WeekDay is a class day of the week. Sunday never has classes.
type WeekDay string

const (
	Monday    WeekDay = "monday"
	Tuesday   WeekDay = "tuesday"
	Wednesday WeekDay = "wednesday"
	Thursday  WeekDay = "thursday"
	Friday    WeekDay = "friday"
	Saturday  WeekDay = "saturday"
)

// WeekDays lists all class days in calendar order
var WeekDays = []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekDay parses a lowercase or mixed-case weekday name
func ParseWeekDay(s string) (WeekDay, error) {
	day := WeekDay(strings.ToLower(strings.TrimSpace(s)))
	if !day.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidWeekDay, s)
	}
	return day, nil
}

// IsValid returns true if the day is one of the class days
func (d WeekDay) IsValid() bool {
	return d.Index() >= 0
}

// Index returns the position of the day in WeekDays or -1
func (d WeekDay) Index() int {
	for i, day := range WeekDays {
		if day == d {
			return i
		}
	}
	return -1
}

// Short returns the three-letter prefix used in slot ids (mon, tue, ...)
func (d WeekDay) Short() string {
	if len(d) < 3 {
		return string(d)
	}
	return string(d[:3])
}

// WeekDayOf returns the class day of a date; ok is false on Sunday
func WeekDayOf(date time.Time) (WeekDay, bool) {
	switch date.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	case time.Saturday:
		return Saturday, true
	default:
		return "", false
	}
}
