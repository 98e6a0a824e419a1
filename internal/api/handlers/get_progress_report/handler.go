package get_progress_report

import (
	"net/http"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	getProgressReport "github.com/m04kA/SMC-CourseService/internal/usecase/get_progress_report"
)

const (
	msgInvalidParams = "некорректные параметры запроса: courseId (UUID), activeOnly (true/false)"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	useCase GetProgressReportUseCase
	logger  Logger
}

func NewHandler(useCase GetProgressReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/progress
// Query params: courseId, activeOnly (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, ok := h.execute(w, r, "GET /reports/progress")
	if !ok {
		return
	}

	h.logger.Info("GET /reports/progress - Report built: students=%d, warnings=%d",
		result.Totals.Students, result.Totals.Warnings)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleXLSX GET /api/v1/reports/progress.xlsx
// Query params: courseId, activeOnly (опционально)
func (h *Handler) HandleXLSX(w http.ResponseWriter, r *http.Request) {
	result, ok := h.execute(w, r, "GET /reports/progress.xlsx")
	if !ok {
		return
	}

	buf, filename, err := getProgressReport.ExportXLSX(result)
	if err != nil {
		h.logger.Error("GET /reports/progress.xlsx - Failed to export report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/progress.xlsx - Report exported: students=%d, bytes=%d",
		result.Totals.Students, buf.Len())
	handlers.RespondFile(w, xlsxContentType, filename, buf.Bytes())
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string) (*getProgressReport.Response, bool) {
	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(query.Get("courseId"), query.Get("activeOnly"))
	if err != nil {
		h.logger.Warn("%s - Invalid parameters: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return nil, false
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("%s - Failed to build report: error=%v", route, err)
		handlers.RespondInternalError(w)
		return nil, false
	}

	return result, true
}
