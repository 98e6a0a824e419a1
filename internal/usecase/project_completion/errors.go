package project_completion

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("project_completion: course not found")

	// ErrInconsistentSchedule возвращается, когда расписание ссылается на слот вне каталога
	ErrInconsistentSchedule = errors.New("project_completion: inconsistent schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("project_completion: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("project_completion: internal error")
)
