package domain

import "errors"

var (
	// ErrInvalidWeekDay is returned for names outside monday..saturday
	ErrInvalidWeekDay = errors.New("domain: invalid weekday")

	// ErrInvalidSchedule is returned when a stored schedule cannot be decoded
	ErrInvalidSchedule = errors.New("domain: invalid schedule")

	// ErrInvalidSkipPeriod is returned for malformed skip period bounds
	ErrInvalidSkipPeriod = errors.New("domain: invalid skip period")

	// ErrAlreadyCompleted is returned when completing a student twice
	ErrAlreadyCompleted = errors.New("domain: student already completed")
)
