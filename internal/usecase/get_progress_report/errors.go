package get_progress_report

import "errors"

var (
	// ErrExport возвращается при ошибке формирования файла отчета
	ErrExport = errors.New("get_progress_report: export failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_progress_report: internal error")
)
