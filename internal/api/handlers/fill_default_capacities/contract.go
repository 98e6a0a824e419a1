package fill_default_capacities

import (
	"context"

	"github.com/m04kA/SMC-CourseService/internal/service/capacity/models"
)

type CapacityService interface {
	FillMissingDefaults(ctx context.Context, defaultSeats int) (*models.InitializeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
