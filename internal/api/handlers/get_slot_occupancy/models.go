package get_slot_occupancy

import (
	getSlotOccupancy "github.com/m04kA/SMC-CourseService/internal/usecase/get_slot_occupancy"
)

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	Slots       []SlotResponse    `json:"slots"`
	Warnings    []WarningResponse `json:"warnings"`
	Initialized int               `json:"initialized"`
}

// SlotResponse заполненность слота
// totalVacancies, availableSeats и occupancyPercent равны null, если вместимость не задана
type SlotResponse struct {
	SlotID           string   `json:"slotId"`
	Day              string   `json:"day"`
	DisplayTime      string   `json:"displayTime"`
	DurationHours    int      `json:"durationHours"`
	Enrolled         int      `json:"enrolled"`
	CapacityKnown    bool     `json:"capacityKnown"`
	TotalVacancies   *int     `json:"totalVacancies"`
	AvailableSeats   *int     `json:"availableSeats"`
	OccupancyPercent *float64 `json:"occupancyPercent"`
	IsFull           bool     `json:"isFull"`
	IsOverCapacity   bool     `json:"isOverCapacity"`
}

// WarningResponse студент, исключенный из подсчета
type WarningResponse struct {
	StudentID string `json:"studentId"`
	Message   string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotOccupancy.Response) *OccupancyResponse {
	out := &OccupancyResponse{
		Slots:       make([]SlotResponse, 0, len(resp.Slots)),
		Warnings:    make([]WarningResponse, 0, len(resp.Warnings)),
		Initialized: resp.Initialized,
	}

	for _, s := range resp.Slots {
		item := SlotResponse{
			SlotID:         s.SlotID,
			Day:            string(s.Day),
			DisplayTime:    s.DisplayTime,
			DurationHours:  s.DurationHours,
			Enrolled:       s.Enrolled,
			CapacityKnown:  s.CapacityKnown,
			IsFull:         s.IsFull,
			IsOverCapacity: s.IsOverCapacity,
		}
		if s.CapacityKnown {
			total, available, percent := s.TotalVacancies, s.AvailableSeats, s.OccupancyPercent
			item.TotalVacancies = &total
			item.AvailableSeats = &available
			item.OccupancyPercent = &percent
		}
		out.Slots = append(out.Slots, item)
	}

	for _, w := range resp.Warnings {
		out.Warnings = append(out.Warnings, WarningResponse{
			StudentID: w.StudentID.String(),
			Message:   w.Message,
		})
	}

	return out
}
