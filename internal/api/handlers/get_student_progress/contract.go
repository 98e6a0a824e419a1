package get_student_progress

import (
	"context"

	getStudentProgress "github.com/m04kA/SMC-CourseService/internal/usecase/get_student_progress"
)

type GetStudentProgressUseCase interface {
	Execute(ctx context.Context, req *getStudentProgress.Request) (*getStudentProgress.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
