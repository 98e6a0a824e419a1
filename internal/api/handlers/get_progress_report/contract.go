package get_progress_report

import (
	"context"

	getProgressReport "github.com/m04kA/SMC-CourseService/internal/usecase/get_progress_report"
)

type GetProgressReportUseCase interface {
	Execute(ctx context.Context, req *getProgressReport.Request) (*getProgressReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
