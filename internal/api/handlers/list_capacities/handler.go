package list_capacities

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseService/internal/domain"
)

const (
	msgInvalidDay = "некорректный день недели, ожидается monday..saturday"
)

type Handler struct {
	service CapacityService
	logger  Logger
}

func NewHandler(service CapacityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /time-slots - Failed to list capacities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /time-slots - Capacities retrieved: count=%d", len(result.Capacities))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByDay GET /api/v1/time-slots/day/{day}
func (h *Handler) HandleByDay(w http.ResponseWriter, r *http.Request) {
	day, err := domain.ParseWeekDay(mux.Vars(r)["day"])
	if err != nil {
		h.logger.Warn("GET /time-slots/day/{day} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.service.ListByDay(r.Context(), day)
	if err != nil {
		h.logger.Error("GET /time-slots/day/{day} - Failed to list capacities: day=%s, error=%v", day, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /time-slots/day/{day} - Capacities retrieved: day=%s, count=%d", day, len(result.Capacities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
