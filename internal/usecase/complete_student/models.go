package complete_student

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на завершение курса
type Request struct {
	StudentID uuid.UUID
	Force     bool // завершить до набора всех часов
}

// Response модель ответа
type Response struct {
	StudentID      uuid.UUID
	CompletionDate time.Time
	CompletedHours int
	TotalHours     int
	Forced         bool // завершен без набора всех часов
}
