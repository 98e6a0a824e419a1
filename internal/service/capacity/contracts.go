package capacity

import (
	"context"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

// CapacityRepository интерфейс реестра вместимости
type CapacityRepository interface {
	GetBySlotID(ctx context.Context, slotID string) (*domain.TimeSlotCapacity, error)
	List(ctx context.Context) ([]*domain.TimeSlotCapacity, error)
	ListByDay(ctx context.Context, day domain.WeekDay) ([]*domain.TimeSlotCapacity, error)
	Upsert(ctx context.Context, c *domain.TimeSlotCapacity) (*domain.TimeSlotCapacity, error)
	InsertMissing(ctx context.Context, rows []*domain.TimeSlotCapacity) (int64, error)
}

// Catalog каталог слотов
type Catalog interface {
	LookupByID(slotID string) (domain.TimeSlot, error)
	All() []domain.TimeSlot
}

// Metrics счетчики записей в реестр
type Metrics interface {
	ObserveCapacityWrites(operation string, rows int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
