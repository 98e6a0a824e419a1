package fill_default_capacities

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseService/internal/service/capacity"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCapacity    = "количество мест должно быть положительным"
)

type Handler struct {
	service      CapacityService
	defaultSeats int
	logger       Logger
}

func NewHandler(service CapacityService, defaultSeats int, logger Logger) *Handler {
	return &Handler{
		service:      service,
		defaultSeats: defaultSeats,
		logger:       logger,
	}
}

// Handle POST /api/v1/time-slots/fill-defaults
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := DefaultSeatsRequest{}
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /time-slots/fill-defaults - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /time-slots/fill-defaults - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgInvalidCapacity, err)
		return
	}

	seats := req.DefaultSeats
	if seats == 0 {
		seats = h.defaultSeats
	}

	result, err := h.service.FillMissingDefaults(r.Context(), seats)
	if err != nil {
		if errors.Is(err, capacity.ErrInvalidCapacity) {
			h.logger.Warn("POST /time-slots/fill-defaults - Invalid capacity: seats=%d", seats)
			handlers.RespondBadRequest(w, msgInvalidCapacity)
			return
		}
		h.logger.Error("POST /time-slots/fill-defaults - Failed to fill defaults: seats=%d, error=%v", seats, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /time-slots/fill-defaults - Defaults filled: seats=%d, written=%d", seats, result.Written)
	handlers.RespondJSON(w, http.StatusOK, result)
}
