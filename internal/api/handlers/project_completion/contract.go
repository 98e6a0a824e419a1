package project_completion

import (
	"context"

	projectCompletion "github.com/m04kA/SMC-CourseService/internal/usecase/project_completion"
)

type ProjectCompletionUseCase interface {
	Execute(ctx context.Context, req *projectCompletion.Request) (*projectCompletion.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
