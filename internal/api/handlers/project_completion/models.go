package project_completion

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseService/internal/domain"
	projectCompletion "github.com/m04kA/SMC-CourseService/internal/usecase/project_completion"
)

// ProjectCompletionRequest HTTP request model
type ProjectCompletionRequest struct {
	CourseID   string              `json:"courseId" validate:"omitempty,uuid"`
	TotalHours int                 `json:"totalHours" validate:"omitempty,min=1"`
	StartDate  string              `json:"startDate" validate:"omitempty,datetime=2006-01-02"` // "2024-01-15"
	Schedule   map[string][]string `json:"schedule"`                                           // {"monday":["mon-08-09"]}
}

// ProjectCompletionResponse HTTP response model
type ProjectCompletionResponse struct {
	CourseID       *string                     `json:"courseId"`
	TotalHours     int                         `json:"totalHours"`
	StartDate      string                      `json:"startDate"`
	WeeklyHours    int                         `json:"weeklyHours"`
	HoursByDay     map[string]int              `json:"hoursByDay"`
	Projection     handlers.ProjectionResponse `json:"projection"`
	CourseEndDate  *string                     `json:"courseEndDate"`
	BehindSchedule bool                        `json:"behindSchedule"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ProjectCompletionRequest) ToUseCaseRequest() (*projectCompletion.Request, error) {
	req := &projectCompletion.Request{TotalHours: r.TotalHours}

	if r.CourseID != "" {
		id, err := uuid.Parse(r.CourseID)
		if err != nil {
			return nil, err
		}
		req.CourseID = &id
	}

	if r.StartDate != "" {
		start, err := time.Parse(domain.DateFormat, r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	schedule, err := domain.ScheduleFromMap(r.Schedule)
	if err != nil {
		return nil, err
	}
	req.Schedule = schedule

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *projectCompletion.Response) *ProjectCompletionResponse {
	out := &ProjectCompletionResponse{
		TotalHours:     resp.TotalHours,
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		WeeklyHours:    resp.WeeklyHours,
		HoursByDay:     make(map[string]int, len(resp.HoursByDay)),
		Projection:     handlers.FromProjection(resp.Projection),
		CourseEndDate:  handlers.FormatDate(resp.CourseEndDate),
		BehindSchedule: resp.BehindSchedule,
	}
	if resp.CourseID != nil {
		id := resp.CourseID.String()
		out.CourseID = &id
	}
	for day, hours := range resp.HoursByDay {
		out.HoursByDay[string(day)] = hours
	}
	return out
}
