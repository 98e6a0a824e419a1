package domain

import "time"

// TimeSlotCapacity is one row of the capacity ledger
type TimeSlotCapacity struct {
	SlotID         string
	Day            WeekDay
	DisplayTime    string
	TotalVacancies int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTimeSlotCapacity builds a ledger row for a catalog slot
func NewTimeSlotCapacity(slot TimeSlot, totalVacancies int) *TimeSlotCapacity {
	return &TimeSlotCapacity{
		SlotID:         slot.ID,
		Day:            slot.Day,
		DisplayTime:    slot.DisplayTime(),
		TotalVacancies: totalVacancies,
	}
}
