package get_student_progress

import "errors"

var (
	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("get_student_progress: student not found")

	// ErrCourseNotFound возвращается, когда курс студента не найден
	ErrCourseNotFound = errors.New("get_student_progress: course not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_student_progress: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_student_progress: internal error")
)
