package get_student_progress

import (
	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	getStudentProgress "github.com/m04kA/SMC-CourseService/internal/usecase/get_student_progress"
)

// StudentProgressResponse HTTP response model
type StudentProgressResponse struct {
	Student handlers.StudentResponse `json:"student"`
	Course  *handlers.CourseResponse `json:"course"`
	Summary handlers.SummaryResponse `json:"summary"`
	Warning *string                  `json:"warning"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStudentProgress.Response) *StudentProgressResponse {
	out := &StudentProgressResponse{
		Student: handlers.FromStudent(resp.Student),
		Course:  handlers.FromCourse(resp.Course),
		Summary: handlers.FromSummary(resp.Summary),
	}
	if resp.Warning != "" {
		warning := resp.Warning
		out.Warning = &warning
	}
	return out
}
