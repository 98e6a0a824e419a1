package domain

import (
	"fmt"

	"github.com/m04kA/SMC-CourseService/pkg/types"
)

// TimeSlot is a bookable class window on a given weekday
type TimeSlot struct {
	ID            string
	Day           WeekDay
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
}

// DisplayTime returns the human readable window, e.g. "08:00 - 09:00"
func (s TimeSlot) DisplayTime() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// SlotID builds the conventional slot id: "mon-08-09"
func SlotID(day WeekDay, start, end types.TimeString) string {
	return fmt.Sprintf("%s-%02d-%02d", day.Short(), start.Minutes()/60, end.Minutes()/60)
}

// SlotRef addresses one slot of one day inside a schedule
type SlotRef struct {
	Day    WeekDay
	SlotID string
}
