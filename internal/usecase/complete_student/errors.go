package complete_student

import "errors"

var (
	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("complete_student: student not found")

	// ErrCourseNotFound возвращается, когда курс студента не найден
	ErrCourseNotFound = errors.New("complete_student: course not found")

	// ErrAlreadyCompleted возвращается при повторном завершении курса
	ErrAlreadyCompleted = errors.New("complete_student: student already completed")

	// ErrNotEligible возвращается, когда часы курса не набраны и завершение не принудительное
	ErrNotEligible = errors.New("complete_student: student is not eligible for completion")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_student: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_student: internal error")
)
