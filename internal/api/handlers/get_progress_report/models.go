package get_progress_report

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	getProgressReport "github.com/m04kA/SMC-CourseService/internal/usecase/get_progress_report"
)

// ReportResponse HTTP response model
type ReportResponse struct {
	GeneratedAt string         `json:"generatedAt"`
	Totals      TotalsResponse `json:"totals"`
	Rows        []RowResponse  `json:"rows"`
}

// TotalsResponse итоги отчета
type TotalsResponse struct {
	Students       int `json:"students"`
	Completed      int `json:"completed"`
	Eligible       int `json:"eligible"`
	BehindSchedule int `json:"behindSchedule"`
	Warnings       int `json:"warnings"`
}

// RowResponse строка отчета
type RowResponse struct {
	Student handlers.StudentResponse `json:"student"`
	Course  *handlers.CourseResponse `json:"course"`
	Summary handlers.SummaryResponse `json:"summary"`
	Warning *string                  `json:"warning"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(courseIDStr, activeOnlyStr string) (*getProgressReport.Request, error) {
	req := &getProgressReport.Request{}

	if courseIDStr != "" {
		id, err := uuid.Parse(courseIDStr)
		if err != nil {
			return nil, err
		}
		req.CourseID = &id
	}

	if activeOnlyStr != "" {
		activeOnly, err := strconv.ParseBool(activeOnlyStr)
		if err != nil {
			return nil, err
		}
		req.ActiveOnly = activeOnly
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getProgressReport.Response) *ReportResponse {
	out := &ReportResponse{
		GeneratedAt: resp.GeneratedAt.Format(time.RFC3339),
		Totals: TotalsResponse{
			Students:       resp.Totals.Students,
			Completed:      resp.Totals.Completed,
			Eligible:       resp.Totals.Eligible,
			BehindSchedule: resp.Totals.BehindSchedule,
			Warnings:       resp.Totals.Warnings,
		},
		Rows: make([]RowResponse, 0, len(resp.Rows)),
	}

	for _, row := range resp.Rows {
		item := RowResponse{
			Student: handlers.FromStudent(row.Student),
			Course:  handlers.FromCourse(row.Course),
			Summary: handlers.FromSummary(row.Summary),
		}
		if row.Warning != "" {
			warning := row.Warning
			item.Warning = &warning
		}
		out.Rows = append(out.Rows, item)
	}

	return out
}
