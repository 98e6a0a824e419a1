package set_capacity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseService/internal/service/capacity"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCapacity    = "количество мест должно быть положительным"
	msgUnknownSlot        = "слот не найден в каталоге"
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

// Handle PATCH /api/v1/time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	var req SetCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /time-slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PATCH /time-slots/{id} - Validation failed: slot_id=%s, error=%v", slotID, err)
		handlers.RespondValidationError(w, msgInvalidCapacity, err)
		return
	}

	result, err := h.service.SetCapacity(r.Context(), slotID, req.TotalVacancies)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrUnknownSlot):
			h.logger.Warn("PATCH /time-slots/{id} - Unknown slot: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgUnknownSlot)

		case errors.Is(err, capacity.ErrInvalidCapacity):
			h.logger.Warn("PATCH /time-slots/{id} - Invalid capacity: slot_id=%s, total=%d", slotID, req.TotalVacancies)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		default:
			h.logger.Error("PATCH /time-slots/{id} - Failed to set capacity: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /time-slots/{id} - Capacity updated: slot_id=%s, total=%d", slotID, result.TotalVacancies)
	handlers.RespondJSON(w, http.StatusOK, result)
}
