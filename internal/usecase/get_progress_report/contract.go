package get_progress_report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
)

// StudentRepository интерфейс репозитория студентов
type StudentRepository interface {
	GetAll(ctx context.Context, filter domain.StudentFilter) ([]*domain.Student, error)
}

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetAll(ctx context.Context) ([]*domain.Course, error)
}

// AttendanceRepository интерфейс репозитория посещаемости
type AttendanceRepository interface {
	GetByStudentIDs(ctx context.Context, studentIDs []uuid.UUID) (map[uuid.UUID][]domain.AttendanceRecord, error)
}

// Tracker интерфейс трекера прогресса
type Tracker interface {
	Summarize(student *domain.Student, course *domain.Course, records []domain.AttendanceRecord, today time.Time) (progress.Summary, error)
}

// Metrics метрики отчета
type Metrics interface {
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
