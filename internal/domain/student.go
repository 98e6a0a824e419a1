package domain

import (
	"time"

	"github.com/google/uuid"
)

// Student is an enrolled student. A student is active until completed;
// completion is one-way.
type Student struct {
	ID              uuid.UUID
	FullName        string
	BirthDate       time.Time
	CourseID        uuid.UUID
	CourseStartDate *time.Time
	Schedule        StudentSchedule
	// ScheduleErr is set when the stored schedule could not be decoded;
	// Schedule is then empty and the student must be flagged, not counted.
	ScheduleErr     error
	IsCompleted     bool
	CompletionDate  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive returns true while the student has not been marked completed
func (s *Student) IsActive() bool {
	return !s.IsCompleted
}

// Complete moves the student from Active to Completed
func (s *Student) Complete(at time.Time) error {
	if s.IsCompleted {
		return ErrAlreadyCompleted
	}
	date := DateOnly(at)
	s.IsCompleted = true
	s.CompletionDate = &date
	return nil
}

// StudentFilter filters the roster
type StudentFilter struct {
	CourseID   *uuid.UUID
	ActiveOnly bool
}
