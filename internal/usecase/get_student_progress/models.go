package get_student_progress

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
)

// Request модель запроса прогресса студента
type Request struct {
	StudentID uuid.UUID
}

// Response модель ответа
// При некорректном расписании Warning заполнен, прогнозы не построены
type Response struct {
	Student *domain.Student
	Course  *domain.Course
	Summary progress.Summary
	Warning string
}
