package get_slot_occupancy

import (
	"fmt"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

// parseDays возвращает дни запроса; пустой день означает все дни каталога
func parseDays(req *Request) ([]domain.WeekDay, error) {
	if req.SlotID != "" && req.Day != "" {
		return nil, fmt.Errorf("%w: day and slot cannot be combined", ErrInvalidInput)
	}
	if req.Day == "" {
		return nil, nil
	}

	day, err := domain.ParseWeekDay(req.Day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return []domain.WeekDay{day}, nil
}
