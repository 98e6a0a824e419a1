package complete_student

import (
	"github.com/m04kA/SMC-CourseService/internal/domain"
	completeStudent "github.com/m04kA/SMC-CourseService/internal/usecase/complete_student"
)

// CompleteStudentRequest HTTP request model; тело необязательно
type CompleteStudentRequest struct {
	Force bool `json:"force"`
}

// CompleteStudentResponse HTTP response model
type CompleteStudentResponse struct {
	StudentID      string `json:"studentId"`
	CompletionDate string `json:"completionDate"`
	CompletedHours int    `json:"completedHours"`
	TotalHours     int    `json:"totalHours"`
	Forced         bool   `json:"forced"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeStudent.Response) *CompleteStudentResponse {
	return &CompleteStudentResponse{
		StudentID:      resp.StudentID.String(),
		CompletionDate: resp.CompletionDate.Format(domain.DateFormat),
		CompletedHours: resp.CompletedHours,
		TotalHours:     resp.TotalHours,
		Forced:         resp.Forced,
	}
}
