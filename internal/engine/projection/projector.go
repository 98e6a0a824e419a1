// Package projection estimates when a student finishes a course from the
// weekly hour load, stepping week by week and adding one extra week whenever
// a step lands inside a skip period.
package projection

import (
	"time"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

const daysPerWeek = 7

// SkipCalendar определяет недели, которые не засчитываются
type SkipCalendar interface {
	Skips(date time.Time) bool
}

// Projection результат прогноза
// Date имеет смысл только при Projectable=true
type Projection struct {
	Projectable     bool
	ReadyToFinalize bool
	Date            time.Time
	Hours           int
	WeeklyHours     int
	Weeks           int
	SkippedWeeks    int
}

// DatePtr возвращает дату прогноза или nil, если прогноз не построен
func (p Projection) DatePtr() *time.Time {
	if !p.Projectable {
		return nil
	}
	d := p.Date
	return &d
}

// After reports whether the projected date is strictly after date.
// An unprojectable result is never after anything.
func (p Projection) After(date time.Time) bool {
	return p.Projectable && p.Date.After(domain.DateOnly(date))
}

// Outcome returns a short label of the result for logs and metrics
func (p Projection) Outcome() string {
	switch {
	case p.ReadyToFinalize:
		return "ready"
	case p.Projectable:
		return "projected"
	default:
		return "unprojectable"
	}
}

// Projector строит прогнозы по календарю пропусков
type Projector struct {
	calendar SkipCalendar
}

// NewProjector создает прогнозатор; nil календарь означает отсутствие пропусков
func NewProjector(calendar SkipCalendar) *Projector {
	if calendar == nil {
		calendar = domain.SkipCalendar{}
	}
	return &Projector{calendar: calendar}
}

// WeeksNeeded возвращает количество учебных недель: ceil(total/weekly)
func WeeksNeeded(totalHours, weeklyHours int) int {
	if totalHours <= 0 || weeklyHours <= 0 {
		return 0
	}
	return (totalHours + weeklyHours - 1) / weeklyHours
}

// Project прогнозирует дату окончания при записи на курс
// Возвращает непрогнозируемый результат при weeklyHours <= 0 или totalHours <= 0
func (p *Projector) Project(start time.Time, totalHours, weeklyHours int) Projection {
	result := Projection{
		Hours:       totalHours,
		WeeklyHours: weeklyHours,
	}
	if totalHours <= 0 || weeklyHours <= 0 {
		return result
	}

	result.Weeks = WeeksNeeded(totalHours, weeklyHours)
	result.Date, result.SkippedWeeks = p.step(domain.DateOnly(start), result.Weeks)
	result.Projectable = true
	return result
}

// ProjectRemaining прогнозирует дату окончания от today по оставшимся часам
// Если часы уже набраны, прогноз не строится и возвращается ReadyToFinalize
func (p *Projector) ProjectRemaining(today time.Time, totalHours, completedHours, weeklyHours int) Projection {
	remaining := totalHours - completedHours
	if totalHours > 0 && remaining <= 0 {
		return Projection{
			ReadyToFinalize: true,
			WeeklyHours:     weeklyHours,
		}
	}
	return p.Project(today, remaining, weeklyHours)
}

// step двигается на weeks недель вперед; неделя, попавшая в период пропуска,
// добавляет одну дополнительную неделю, которая повторно не проверяется
func (p *Projector) step(from time.Time, weeks int) (time.Time, int) {
	date := from
	skipped := 0
	for i := 0; i < weeks; i++ {
		date = date.AddDate(0, 0, daysPerWeek)
		if p.calendar.Skips(date) {
			date = date.AddDate(0, 0, daysPerWeek)
			skipped++
		}
	}
	return date, skipped
}
