package complete_student

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	completeStudent "github.com/m04kA/SMC-CourseService/internal/usecase/complete_student"
)

const (
	msgInvalidStudentID   = "некорректный ID студента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStudentNotFound    = "студент не найден"
	msgCourseNotFound     = "курс студента не найден"
	msgAlreadyCompleted   = "студент уже завершил курс"
	msgNotEligible        = "часы курса еще не набраны"
)

type Handler struct {
	useCase CompleteStudentUseCase
	logger  Logger
}

func NewHandler(useCase CompleteStudentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/students/{studentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(mux.Vars(r)["studentId"])
	if err != nil {
		h.logger.Warn("POST /students/{id}/complete - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	var req CompleteStudentRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /students/{id}/complete - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &completeStudent.Request{
		StudentID: studentID,
		Force:     req.Force,
	})
	if err != nil {
		switch {
		case errors.Is(err, completeStudent.ErrInvalidInput):
			h.logger.Warn("POST /students/{id}/complete - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStudentID)

		case errors.Is(err, completeStudent.ErrStudentNotFound):
			h.logger.Warn("POST /students/{id}/complete - Student not found: student_id=%s", studentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, completeStudent.ErrCourseNotFound):
			h.logger.Warn("POST /students/{id}/complete - Course not found: student_id=%s", studentID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, completeStudent.ErrAlreadyCompleted):
			h.logger.Warn("POST /students/{id}/complete - Already completed: student_id=%s", studentID)
			handlers.RespondConflict(w, msgAlreadyCompleted)

		case errors.Is(err, completeStudent.ErrNotEligible):
			h.logger.Warn("POST /students/{id}/complete - Not eligible: student_id=%s", studentID)
			handlers.RespondConflict(w, msgNotEligible)

		default:
			h.logger.Error("POST /students/{id}/complete - Failed to complete student: student_id=%s, error=%v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /students/{id}/complete - Student completed: student_id=%s, forced=%t", studentID, result.Forced)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
