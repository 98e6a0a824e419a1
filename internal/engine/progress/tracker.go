// Package progress turns attendance history into completed hours, progress
// and completion flags for one student.
package progress

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/projection"
)

// AttendanceBand оценка посещаемости
type AttendanceBand string

const (
	BandExcellent AttendanceBand = "excellent"
	BandGood      AttendanceBand = "good"
	BandRegular   AttendanceBand = "regular"
	BandLow       AttendanceBand = "low"
)

// BandOf возвращает оценку для процента посещаемости
func BandOf(percent float64) AttendanceBand {
	switch {
	case percent >= domain.AttendanceExcellentPercent:
		return BandExcellent
	case percent >= domain.AttendanceGoodPercent:
		return BandGood
	case percent >= domain.AttendanceRegularPercent:
		return BandRegular
	default:
		return BandLow
	}
}

// AttendanceStats счетчики посещаемости
type AttendanceStats struct {
	TotalClasses int
	Present      int
	Absent       int
	Percent      float64
	Band         AttendanceBand
}

// CompletedHours суммирует часы только по записям present
// Часы отсутствия не учитываются, даже если в записи они ненулевые
func CompletedHours(records []domain.AttendanceRecord) int {
	total := 0
	for i := range records {
		if !records[i].IsPresent() || records[i].ClassHours <= 0 {
			continue
		}
		total += records[i].ClassHours
	}
	return total
}

// Attendance считает счетчики посещаемости
func Attendance(records []domain.AttendanceRecord) AttendanceStats {
	stats := AttendanceStats{}
	for i := range records {
		switch records[i].Status {
		case domain.AttendancePresent:
			stats.Present++
		case domain.AttendanceAbsent:
			stats.Absent++
		default:
			continue
		}
		stats.TotalClasses++
	}
	if stats.TotalClasses > 0 {
		stats.Percent = float64(stats.Present*100) / float64(stats.TotalClasses)
	}
	stats.Band = BandOf(stats.Percent)
	return stats
}

// ProgressPercent возвращает completed/total*100; 0 при total <= 0
func ProgressPercent(completedHours, totalHours int) float64 {
	if totalHours <= 0 {
		return 0
	}
	return float64(completedHours*100) / float64(totalHours)
}

// IsEligibleForCompletion returns true once progress reaches 100%
func IsEligibleForCompletion(completedHours, totalHours int) bool {
	return totalHours > 0 && completedHours >= totalHours
}

// Aggregator источник недельной нагрузки
type Aggregator interface {
	WeeklyHours(s domain.StudentSchedule) (int, error)
}

// Projector источник прогнозов
type Projector interface {
	Project(start time.Time, totalHours, weeklyHours int) projection.Projection
	ProjectRemaining(today time.Time, totalHours, completedHours, weeklyHours int) projection.Projection
}

// Summary сводка прогресса студента
type Summary struct {
	WeeklyHours     int
	CompletedHours  int
	RemainingHours  int
	ProgressPercent float64
	Eligible        bool
	BehindSchedule  bool
	Original        projection.Projection
	Current         projection.Projection
	Attendance      AttendanceStats
}

// Tracker собирает сводку прогресса
type Tracker struct {
	aggregator Aggregator
	projector  Projector
}

// NewTracker создает трекер
func NewTracker(aggregator Aggregator, projector Projector) *Tracker {
	return &Tracker{
		aggregator: aggregator,
		projector:  projector,
	}
}

// Summarize считает прогресс студента на дату today
// Ошибка расписания возвращается как есть, чтобы вызывающий мог пометить строку
func (t *Tracker) Summarize(student *domain.Student, course *domain.Course, records []domain.AttendanceRecord, today time.Time) (Summary, error) {
	if student.CourseID != course.ID {
		return Summary{}, fmt.Errorf("%w: student %s, course %s", ErrCourseMismatch, student.ID, course.ID)
	}

	if student.ScheduleErr != nil {
		return Summary{}, student.ScheduleErr
	}

	weekly, err := t.aggregator.WeeklyHours(student.Schedule)
	if err != nil {
		return Summary{}, err
	}

	start := course.StartDate
	if student.CourseStartDate != nil {
		start = *student.CourseStartDate
	}

	summary := Partial(course, records)
	summary.WeeklyHours = weekly
	summary.Original = t.projector.Project(start, course.TotalHours, weekly)
	summary.Current = t.projector.ProjectRemaining(today, course.TotalHours, summary.CompletedHours, weekly)
	summary.BehindSchedule = summary.Current.After(course.EndDate)

	return summary, nil
}

// Partial считает часть сводки, не зависящую от расписания: часы, прогресс и посещаемость
// Используется и для студентов с некорректным расписанием, у которых прогноз не строится
func Partial(course *domain.Course, records []domain.AttendanceRecord) Summary {
	completed := CompletedHours(records)
	remaining := course.TotalHours - completed
	if remaining < 0 {
		remaining = 0
	}

	return Summary{
		CompletedHours:  completed,
		RemainingHours:  remaining,
		ProgressPercent: ProgressPercent(completed, course.TotalHours),
		Eligible:        IsEligibleForCompletion(completed, course.TotalHours),
		Attendance:      Attendance(records),
	}
}
