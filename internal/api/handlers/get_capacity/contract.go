package get_capacity

import (
	"context"

	"github.com/m04kA/SMC-CourseService/internal/service/capacity/models"
)

type CapacityService interface {
	GetCapacity(ctx context.Context, slotID string) (*models.CapacityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
