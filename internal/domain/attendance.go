package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus is the outcome of one class for one student
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// IsValid returns true for present and absent
func (s AttendanceStatus) IsValid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// AttendanceRecord is an append-only attendance entry
type AttendanceRecord struct {
	ID         uuid.UUID
	StudentID  uuid.UUID
	Date       time.Time
	Status     AttendanceStatus
	ClassHours int
	CreatedAt  time.Time
}

// IsPresent returns true when the student attended
func (r *AttendanceRecord) IsPresent() bool {
	return r.Status == AttendancePresent
}
