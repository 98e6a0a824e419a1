package get_capacity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseService/internal/service/capacity"
)

const (
	msgUnknownSlot    = "слот не найден в каталоге"
	msgNotInitialized = "вместимость слота не задана"
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

// Handle GET /api/v1/time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	result, err := h.service.GetCapacity(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrUnknownSlot):
			h.logger.Warn("GET /time-slots/{id} - Unknown slot: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgUnknownSlot)

		case errors.Is(err, capacity.ErrNotInitialized):
			h.logger.Warn("GET /time-slots/{id} - Capacity not initialized: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgNotInitialized)

		default:
			h.logger.Error("GET /time-slots/{id} - Failed to get capacity: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-slots/{id} - Capacity retrieved: slot_id=%s, total=%d", slotID, result.TotalVacancies)
	handlers.RespondJSON(w, http.StatusOK, result)
}
