package project_completion

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/projection"
)

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

// Aggregator интерфейс расчета недельной нагрузки
type Aggregator interface {
	WeeklyHours(s domain.StudentSchedule) (int, error)
	Breakdown(s domain.StudentSchedule) (map[domain.WeekDay]int, error)
}

// Projector интерфейс прогноза даты завершения
type Projector interface {
	Project(start time.Time, totalHours, weeklyHours int) projection.Projection
}

// Metrics метрики прогнозов
type Metrics interface {
	ObserveProjection(kind, outcome string)
	ObserveInconsistentSchedule()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
