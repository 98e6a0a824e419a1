package get_catalog

import "github.com/m04kA/SMC-CourseService/internal/domain"

// CatalogResponse каталог слотов по дням
type CatalogResponse struct {
	Days []DayResponse `json:"days"`
}

// DayResponse слоты одного дня
type DayResponse struct {
	Day        string         `json:"day"`
	TotalHours int            `json:"totalHours"`
	Slots      []SlotResponse `json:"slots"`
}

// SlotResponse слот каталога
type SlotResponse struct {
	ID            string `json:"id"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	DisplayTime   string `json:"displayTime"`
	DurationHours int    `json:"durationHours"`
}

// FromCatalog строит ответ в календарном порядке; дни без слотов не выводятся
func FromCatalog(c Catalog) *CatalogResponse {
	resp := &CatalogResponse{Days: make([]DayResponse, 0)}

	for _, day := range c.Days() {
		slots := c.SlotsForDay(day)
		item := DayResponse{
			Day:   string(day),
			Slots: make([]SlotResponse, 0, len(slots)),
		}
		for _, s := range slots {
			item.TotalHours += s.DurationHours
			item.Slots = append(item.Slots, fromSlot(s))
		}
		resp.Days = append(resp.Days, item)
	}

	return resp
}

func fromSlot(s domain.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:            s.ID,
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		DisplayTime:   s.DisplayTime(),
		DurationHours: s.DurationHours,
	}
}
