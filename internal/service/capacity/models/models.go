package models

import (
	"time"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

// CapacityResponse строка реестра вместимости
type CapacityResponse struct {
	SlotID         string    `json:"slotId"`
	Day            string    `json:"day"`
	DisplayTime    string    `json:"displayTime"`
	TotalVacancies int       `json:"totalVacancies"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CapacityListResponse список строк реестра
type CapacityListResponse struct {
	Capacities []CapacityResponse `json:"capacities"`
}

// InitializeResponse итог массовой операции над реестром
type InitializeResponse struct {
	DefaultSeats int `json:"defaultSeats"`
	CatalogSlots int `json:"catalogSlots"`
	Written      int `json:"written"`
}

// FromDomainCapacity конвертирует domain модель в DTO
func FromDomainCapacity(c *domain.TimeSlotCapacity) *CapacityResponse {
	if c == nil {
		return nil
	}

	return &CapacityResponse{
		SlotID:         c.SlotID,
		Day:            string(c.Day),
		DisplayTime:    c.DisplayTime,
		TotalVacancies: c.TotalVacancies,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// FromDomainCapacityList конвертирует список domain моделей в DTO
func FromDomainCapacityList(capacities []*domain.TimeSlotCapacity) *CapacityListResponse {
	resp := &CapacityListResponse{
		Capacities: make([]CapacityResponse, 0, len(capacities)),
	}

	for _, c := range capacities {
		if item := FromDomainCapacity(c); item != nil {
			resp.Capacities = append(resp.Capacities, *item)
		}
	}

	return resp
}
