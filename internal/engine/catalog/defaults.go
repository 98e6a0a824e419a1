package catalog

import (
	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/pkg/types"
)

// defaultDays дни с занятиями; в пятницу занятий нет
var defaultDays = []domain.WeekDay{
	domain.Monday,
	domain.Tuesday,
	domain.Wednesday,
	domain.Thursday,
	domain.Saturday,
}

// defaultWindows часовые окна занятий (обед 11:00-13:00 пропущен)
var defaultWindows = [][2]string{
	{"08:00", "09:00"},
	{"09:00", "10:00"},
	{"10:00", "11:00"},
	{"13:00", "14:00"},
	{"14:00", "15:00"},
	{"15:00", "16:00"},
	{"16:00", "17:00"},
}

// DefaultDefinitions возвращает стандартную сетку слотов: id вида "mon-08-09", по 1 часу
func DefaultDefinitions() []SlotDefinition {
	defs := make([]SlotDefinition, 0, len(defaultDays)*len(defaultWindows))
	for _, day := range defaultDays {
		for _, w := range defaultWindows {
			start := types.MustTimeString(w[0])
			end := types.MustTimeString(w[1])
			defs = append(defs, SlotDefinition{
				ID:    domain.SlotID(day, start, end),
				Day:   day,
				Start: start,
				End:   end,
			})
		}
	}
	return defs
}

// Default строит стандартный каталог
func Default() *Catalog {
	c, err := New(DefaultDefinitions())
	if err != nil {
		// стандартная сетка статична и согласована
		panic(err)
	}
	return c
}
