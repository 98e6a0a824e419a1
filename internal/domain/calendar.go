package domain

import (
	"fmt"
	"time"
)

// SkipPeriod is a calendar window during which class weeks do not count,
// e.g. an institutional recess. Bounds are inclusive.
// A recurring period compares month and day only and may wrap the new year.
type SkipPeriod struct {
	From      time.Time
	To        time.Time
	Recurring bool
}

const recurringLayout = "01-02"

// NewSkipPeriod parses bounds either as "MM-DD" (recurring every year) or
// as "YYYY-MM-DD" (one-off). Both bounds must use the same form.
func NewSkipPeriod(from, to string) (SkipPeriod, error) {
	if len(from) == len(recurringLayout) && len(to) == len(recurringLayout) {
		f, err := time.Parse(recurringLayout, from)
		if err != nil {
			return SkipPeriod{}, fmt.Errorf("%w: from %q: %v", ErrInvalidSkipPeriod, from, err)
		}
		t, err := time.Parse(recurringLayout, to)
		if err != nil {
			return SkipPeriod{}, fmt.Errorf("%w: to %q: %v", ErrInvalidSkipPeriod, to, err)
		}
		return SkipPeriod{From: f, To: t, Recurring: true}, nil
	}

	f, err := time.Parse(DateFormat, from)
	if err != nil {
		return SkipPeriod{}, fmt.Errorf("%w: from %q: %v", ErrInvalidSkipPeriod, from, err)
	}
	t, err := time.Parse(DateFormat, to)
	if err != nil {
		return SkipPeriod{}, fmt.Errorf("%w: to %q: %v", ErrInvalidSkipPeriod, to, err)
	}
	if t.Before(f) {
		return SkipPeriod{}, fmt.Errorf("%w: %s is before %s", ErrInvalidSkipPeriod, to, from)
	}
	return SkipPeriod{From: f, To: t}, nil
}

// MonthSkipPeriod returns a recurring period covering a whole month
func MonthSkipPeriod(month time.Month) SkipPeriod {
	first := time.Date(0, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return SkipPeriod{From: first, To: last, Recurring: true}
}

// Contains reports whether date falls inside the period
func (p SkipPeriod) Contains(date time.Time) bool {
	if !p.Recurring {
		d := DateOnly(date)
		return !d.Before(DateOnly(p.From)) && !d.After(DateOnly(p.To))
	}

	key := monthDay(date)
	from, to := monthDay(p.From), monthDay(p.To)
	if from <= to {
		return key >= from && key <= to
	}
	// период переходит через новый год
	return key >= from || key <= to
}

func monthDay(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}

// SkipCalendar is a set of skip periods
type SkipCalendar []SkipPeriod

// Skips reports whether date falls inside any period
func (c SkipCalendar) Skips(date time.Time) bool {
	for _, p := range c {
		if p.Contains(date) {
			return true
		}
	}
	return false
}

// DefaultSkipCalendar skips December, the institutional recess
func DefaultSkipCalendar() SkipCalendar {
	return SkipCalendar{MonthSkipPeriod(time.December)}
}

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
