package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromCatalog(h.catalog)

	h.logger.Info("GET /catalog - Catalog retrieved: days=%d", len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
