package project_completion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	projectCompletion "github.com/m04kA/SMC-CourseService/internal/usecase/project_completion"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequest       = "некорректные параметры прогноза"
	msgInvalidSchedule      = "некорректное расписание: ожидается день недели -> список ID слотов"
	msgCourseNotFound       = "курс не найден"
	msgInconsistentSchedule = "расписание содержит слоты, которых нет в каталоге"
)

type Handler struct {
	useCase ProjectCompletionUseCase
	logger  Logger
}

func NewHandler(useCase ProjectCompletionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/projections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ProjectCompletionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /projections - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /projections - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgInvalidRequest, err)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /projections - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSchedule)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, projectCompletion.ErrInvalidInput):
			h.logger.Warn("POST /projections - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, projectCompletion.ErrCourseNotFound):
			h.logger.Warn("POST /projections - Course not found: course_id=%s", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, projectCompletion.ErrInconsistentSchedule):
			h.logger.Warn("POST /projections - Inconsistent schedule: %v", err)
			handlers.RespondUnprocessable(w, msgInconsistentSchedule)

		default:
			h.logger.Error("POST /projections - Failed to project completion: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /projections - Projection computed: weekly=%d, outcome=%s",
		result.WeeklyHours, result.Projection.Outcome())
	handlers.RespondJSON(w, http.StatusOK, response)
}
