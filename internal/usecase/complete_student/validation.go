package complete_student

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentID == uuid.Nil {
		return fmt.Errorf("%w: studentID is required", ErrInvalidInput)
	}
	return nil
}
