package get_slot_occupancy

import (
	"context"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/occupancy"
	capacityModels "github.com/m04kA/SMC-CourseService/internal/service/capacity/models"
)

// StudentRepository интерфейс репозитория студентов
type StudentRepository interface {
	GetAll(ctx context.Context, filter domain.StudentFilter) ([]*domain.Student, error)
}

// CapacityLedger интерфейс реестра вместимости
type CapacityLedger interface {
	Snapshot(ctx context.Context) (map[string]int, error)
	FillMissingDefaults(ctx context.Context, defaultSeats int) (*capacityModels.InitializeResponse, error)
}

// Calculator интерфейс калькулятора заполненности
type Calculator interface {
	Compute(roster []*domain.Student, capacities occupancy.CapacityLookup, days ...domain.WeekDay) occupancy.Report
	ForSlot(roster []*domain.Student, slotID string, capacities occupancy.CapacityLookup) (occupancy.Report, error)
}

// Metrics счетчик несогласованных расписаний
type Metrics interface {
	ObserveInconsistentSchedule()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
