package get_progress_report

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
)

// Request модель запроса отчета
type Request struct {
	CourseID   *uuid.UUID // nil = все курсы
	ActiveOnly bool
}

// Response модель отчета
type Response struct {
	GeneratedAt time.Time
	Rows        []Row
	Totals      Totals
}

// Row строка отчета по одному студенту
// Course равен nil, если курс студента не найден; тогда заполнен Warning
type Row struct {
	Student *domain.Student
	Course  *domain.Course
	Summary progress.Summary
	Warning string
}

// Totals итоги по строкам без предупреждений
type Totals struct {
	Students       int
	Completed      int
	Eligible       int
	BehindSchedule int
	Warnings       int
}
