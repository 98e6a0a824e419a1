package progress

import "errors"

var (
	ErrCourseMismatch = errors.New("engine.progress: student is not enrolled in course")
)
