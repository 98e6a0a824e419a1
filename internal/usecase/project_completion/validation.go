package project_completion

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourseID == nil && req.TotalHours <= 0 {
		return fmt.Errorf("%w: courseId or positive totalHours is required", ErrInvalidInput)
	}
	if req.TotalHours < 0 {
		return fmt.Errorf("%w: totalHours must not be negative", ErrInvalidInput)
	}
	return nil
}
