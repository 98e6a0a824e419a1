package list_capacities

import (
	"context"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/service/capacity/models"
)

type CapacityService interface {
	List(ctx context.Context) (*models.CapacityListResponse, error)
	ListByDay(ctx context.Context, day domain.WeekDay) (*models.CapacityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
