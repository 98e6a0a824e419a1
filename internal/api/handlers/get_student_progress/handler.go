package get_student_progress

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	getStudentProgress "github.com/m04kA/SMC-CourseService/internal/usecase/get_student_progress"
)

const (
	msgInvalidStudentID = "некорректный ID студента"
	msgStudentNotFound  = "студент не найден"
	msgCourseNotFound   = "курс студента не найден"
)

type Handler struct {
	useCase GetStudentProgressUseCase
	logger  Logger
}

func NewHandler(useCase GetStudentProgressUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{studentId}/progress
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(mux.Vars(r)["studentId"])
	if err != nil {
		h.logger.Warn("GET /students/{id}/progress - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getStudentProgress.Request{StudentID: studentID})
	if err != nil {
		switch {
		case errors.Is(err, getStudentProgress.ErrInvalidInput):
			h.logger.Warn("GET /students/{id}/progress - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStudentID)

		case errors.Is(err, getStudentProgress.ErrStudentNotFound):
			h.logger.Warn("GET /students/{id}/progress - Student not found: student_id=%s", studentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, getStudentProgress.ErrCourseNotFound):
			h.logger.Warn("GET /students/{id}/progress - Course not found: student_id=%s", studentID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		default:
			h.logger.Error("GET /students/{id}/progress - Failed to get progress: student_id=%s, error=%v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /students/{id}/progress - Progress retrieved: student_id=%s, progress=%.1f",
		studentID, result.Summary.ProgressPercent)
	handlers.RespondJSON(w, http.StatusOK, response)
}
