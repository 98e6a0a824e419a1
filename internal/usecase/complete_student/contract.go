package complete_student

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

// StudentRepository интерфейс репозитория студентов
type StudentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, completionDate time.Time) (*domain.Student, error)
}

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

// AttendanceRepository интерфейс репозитория посещаемости
type AttendanceRepository interface {
	GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]domain.AttendanceRecord, error)
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
