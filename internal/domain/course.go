package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is a fixed-length course. EndDate is the nominal end, not a
// per-student projection.
type Course struct {
	ID         uuid.UUID
	Name       string
	TotalHours int
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
