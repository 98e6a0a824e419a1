package get_catalog

import "github.com/m04kA/SMC-CourseService/internal/domain"

type Catalog interface {
	Days() []domain.WeekDay
	SlotsForDay(day domain.WeekDay) []domain.TimeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
