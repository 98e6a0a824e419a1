package get_slot_occupancy

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	getSlotOccupancy "github.com/m04kA/SMC-CourseService/internal/usecase/get_slot_occupancy"
)

const (
	msgInvalidDay  = "некорректный день недели, ожидается monday..saturday"
	msgUnknownSlot = "слот не найден в каталоге"
)

type Handler struct {
	useCase GetSlotOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy
// Query params: day (опционально, monday..saturday)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")

	result, err := h.useCase.Execute(r.Context(), &getSlotOccupancy.Request{Day: day})
	if err != nil {
		switch {
		case errors.Is(err, getSlotOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /occupancy - Invalid day: day=%q", day)
			handlers.RespondBadRequest(w, msgInvalidDay)

		default:
			h.logger.Error("GET /occupancy - Failed to compute occupancy: day=%q, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /occupancy - Occupancy computed: day=%q, slots=%d, warnings=%d",
		day, len(result.Slots), len(result.Warnings))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleSlot GET /api/v1/occupancy/{slotId}
func (h *Handler) HandleSlot(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	result, err := h.useCase.Execute(r.Context(), &getSlotOccupancy.Request{SlotID: slotID})
	if err != nil {
		switch {
		case errors.Is(err, getSlotOccupancy.ErrSlotNotFound):
			h.logger.Warn("GET /occupancy/{id} - Unknown slot: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgUnknownSlot)

		default:
			h.logger.Error("GET /occupancy/{id} - Failed to compute occupancy: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /occupancy/{id} - Occupancy computed: slot_id=%s, warnings=%d", slotID, len(result.Warnings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
