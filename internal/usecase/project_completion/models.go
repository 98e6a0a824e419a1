package project_completion

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/projection"
)

// Request модель запроса предварительного прогноза
// Нужен либо CourseID, либо TotalHours; явный TotalHours имеет приоритет
type Request struct {
	CourseID   *uuid.UUID
	TotalHours int
	StartDate  *time.Time // nil = дата начала курса, без курса = сегодня
	Schedule   domain.StudentSchedule
}

// Response модель ответа с прогнозом
type Response struct {
	CourseID       *uuid.UUID
	TotalHours     int
	StartDate      time.Time
	WeeklyHours    int
	HoursByDay     map[domain.WeekDay]int
	Projection     projection.Projection
	CourseEndDate  *time.Time
	BehindSchedule bool
}
