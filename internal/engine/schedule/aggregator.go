// Package schedule computes a student's weekly hour load. It is the only
// place weekly hours are summed; projections and reports call it instead of
// recomputing.
package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

// Catalog источник длительностей слотов
type Catalog interface {
	DurationOf(day domain.WeekDay, slotID string) (int, error)
}

// Aggregator считает недельную нагрузку по каталогу
type Aggregator struct {
	catalog Catalog
}

// NewAggregator создает агрегатор поверх каталога
func NewAggregator(catalog Catalog) *Aggregator {
	return &Aggregator{catalog: catalog}
}

// WeeklyHours суммирует длительности всех пар (день, слот) расписания
// Несуществующий слот является ошибкой ErrInconsistentSchedule, а не пропускается
// Пустое расписание дает 0
func (a *Aggregator) WeeklyHours(s domain.StudentSchedule) (int, error) {
	total := 0
	var unresolved []error

	for _, ref := range s.Pairs() {
		hours, err := a.catalog.DurationOf(ref.Day, ref.SlotID)
		if err != nil {
			unresolved = append(unresolved, err)
			continue
		}
		total += hours
	}

	if len(unresolved) > 0 {
		return 0, fmt.Errorf("%w: %w", ErrInconsistentSchedule, errors.Join(unresolved...))
	}

	return total, nil
}

// Validate проверяет, что каждый слот расписания существует в каталоге
func (a *Aggregator) Validate(s domain.StudentSchedule) error {
	_, err := a.WeeklyHours(s)
	return err
}

// Breakdown возвращает нагрузку по дням; дни без слотов не включаются
func (a *Aggregator) Breakdown(s domain.StudentSchedule) (map[domain.WeekDay]int, error) {
	perDay := make(map[domain.WeekDay]int)
	for _, ref := range s.Pairs() {
		hours, err := a.catalog.DurationOf(ref.Day, ref.SlotID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInconsistentSchedule, err)
		}
		perDay[ref.Day] += hours
	}
	return perDay, nil
}
