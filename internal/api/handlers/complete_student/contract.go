package complete_student

import (
	"context"

	completeStudent "github.com/m04kA/SMC-CourseService/internal/usecase/complete_student"
)

type CompleteStudentUseCase interface {
	Execute(ctx context.Context, req *completeStudent.Request) (*completeStudent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
