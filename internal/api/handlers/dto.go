package handlers

import (
	"time"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
	"github.com/m04kA/SMC-CourseService/internal/engine/projection"
)

// ProjectionResponse прогноз даты завершения
// date равен null, если прогноз невозможен или часы уже набраны
type ProjectionResponse struct {
	Outcome         string  `json:"outcome"`
	Projectable     bool    `json:"projectable"`
	ReadyToFinalize bool    `json:"readyToFinalize"`
	Date            *string `json:"date"`
	Hours           int     `json:"hours"`
	WeeklyHours     int     `json:"weeklyHours"`
	Weeks           int     `json:"weeks"`
	SkippedWeeks    int     `json:"skippedWeeks"`
}

// FromProjection конвертирует прогноз в DTO
func FromProjection(p projection.Projection) ProjectionResponse {
	return ProjectionResponse{
		Outcome:         p.Outcome(),
		Projectable:     p.Projectable,
		ReadyToFinalize: p.ReadyToFinalize,
		Date:            FormatDate(p.DatePtr()),
		Hours:           p.Hours,
		WeeklyHours:     p.WeeklyHours,
		Weeks:           p.Weeks,
		SkippedWeeks:    p.SkippedWeeks,
	}
}

// FormatDate форматирует дату как YYYY-MM-DD; nil остается nil
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}

// AttendanceResponse счетчики посещаемости
type AttendanceResponse struct {
	TotalClasses int     `json:"totalClasses"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	Percent      float64 `json:"percent"`
	Band         string  `json:"band"`
}

// SummaryResponse сводка прогресса студента
type SummaryResponse struct {
	WeeklyHours     int                `json:"weeklyHours"`
	CompletedHours  int                `json:"completedHours"`
	RemainingHours  int                `json:"remainingHours"`
	ProgressPercent float64            `json:"progressPercent"`
	Eligible        bool               `json:"eligibleForCompletion"`
	BehindSchedule  bool               `json:"behindSchedule"`
	Original        ProjectionResponse `json:"originalProjection"`
	Current         ProjectionResponse `json:"currentProjection"`
	Attendance      AttendanceResponse `json:"attendance"`
}

// FromSummary конвертирует сводку прогресса в DTO
func FromSummary(s progress.Summary) SummaryResponse {
	return SummaryResponse{
		WeeklyHours:     s.WeeklyHours,
		CompletedHours:  s.CompletedHours,
		RemainingHours:  s.RemainingHours,
		ProgressPercent: s.ProgressPercent,
		Eligible:        s.Eligible,
		BehindSchedule:  s.BehindSchedule,
		Original:        FromProjection(s.Original),
		Current:         FromProjection(s.Current),
		Attendance: AttendanceResponse{
			TotalClasses: s.Attendance.TotalClasses,
			Present:      s.Attendance.Present,
			Absent:       s.Attendance.Absent,
			Percent:      s.Attendance.Percent,
			Band:         string(s.Attendance.Band),
		},
	}
}

// StudentResponse краткие данные студента
type StudentResponse struct {
	ID              string  `json:"id"`
	FullName        string  `json:"fullName"`
	CourseID        string  `json:"courseId"`
	CourseStartDate *string `json:"courseStartDate"`
	IsCompleted     bool    `json:"isCompleted"`
	CompletionDate  *string `json:"completionDate"`
}

// FromStudent конвертирует студента в DTO
func FromStudent(s *domain.Student) StudentResponse {
	return StudentResponse{
		ID:              s.ID.String(),
		FullName:        s.FullName,
		CourseID:        s.CourseID.String(),
		CourseStartDate: FormatDate(s.CourseStartDate),
		IsCompleted:     s.IsCompleted,
		CompletionDate:  FormatDate(s.CompletionDate),
	}
}

// CourseResponse краткие данные курса
type CourseResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalHours int    `json:"totalHours"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// FromCourse конвертирует курс в DTO; nil остается nil
func FromCourse(c *domain.Course) *CourseResponse {
	if c == nil {
		return nil
	}
	return &CourseResponse{
		ID:         c.ID.String(),
		Name:       c.Name,
		TotalHours: c.TotalHours,
		StartDate:  c.StartDate.Format(domain.DateFormat),
		EndDate:    c.EndDate.Format(domain.DateFormat),
	}
}
