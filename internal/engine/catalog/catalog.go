// Package catalog is the read-only registry of bookable class slots.
// A Catalog is built once from configuration and injected wherever slot
// durations or weekdays are needed, so every component resolves a slot id
// the same way.
package catalog

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/pkg/types"
)

// SlotDefinition описание слота в конфигурации
// Hours можно не указывать: тогда длительность вычисляется по времени начала и конца
type SlotDefinition struct {
	ID    string
	Day   domain.WeekDay
	Start types.TimeString
	End   types.TimeString
	Hours int
}

// Catalog неизменяемый каталог слотов
type Catalog struct {
	byDay map[domain.WeekDay][]domain.TimeSlot
	byID  map[string]domain.TimeSlot
}

// New строит каталог и проверяет его согласованность:
// уникальные id, корректный день, конец позже начала, длительность в целых часах
func New(defs []SlotDefinition) (*Catalog, error) {
	c := &Catalog{
		byDay: make(map[domain.WeekDay][]domain.TimeSlot, len(domain.WeekDays)),
		byID:  make(map[string]domain.TimeSlot, len(defs)),
	}

	for _, def := range defs {
		slot, err := buildSlot(def)
		if err != nil {
			return nil, err
		}
		if _, exists := c.byID[slot.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate slot id %q", ErrInvalidCatalog, slot.ID)
		}
		c.byID[slot.ID] = slot
		c.byDay[slot.Day] = append(c.byDay[slot.Day], slot)
	}

	for day := range c.byDay {
		slots := c.byDay[day]
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].StartTime.IsBefore(slots[j].StartTime)
		})
	}

	return c, nil
}

func buildSlot(def SlotDefinition) (domain.TimeSlot, error) {
	if !def.Day.IsValid() {
		return domain.TimeSlot{}, fmt.Errorf("%w: slot %q: invalid day %q", ErrInvalidCatalog, def.ID, def.Day)
	}
	if !def.Start.IsBefore(def.End) {
		return domain.TimeSlot{}, fmt.Errorf("%w: slot %q: end %s is not after start %s",
			ErrInvalidCatalog, def.ID, def.End, def.Start)
	}

	span := def.Start.MinutesUntil(def.End)
	if span%60 != 0 {
		return domain.TimeSlot{}, fmt.Errorf("%w: slot %q: %d minutes is not a whole number of hours",
			ErrInvalidCatalog, def.ID, span)
	}
	hours := span / 60
	if def.Hours != 0 && def.Hours != hours {
		return domain.TimeSlot{}, fmt.Errorf("%w: slot %q: hours=%d does not match %s",
			ErrInvalidCatalog, def.ID, def.Hours, domain.TimeSlot{StartTime: def.Start, EndTime: def.End}.DisplayTime())
	}

	id := def.ID
	if id == "" {
		id = domain.SlotID(def.Day, def.Start, def.End)
	}

	return domain.TimeSlot{
		ID:            id,
		Day:           def.Day,
		StartTime:     def.Start,
		EndTime:       def.End,
		DurationHours: hours,
	}, nil
}

// SlotsForDay возвращает слоты дня, упорядоченные по времени начала
// Для дня без занятий возвращается пустой срез, это не ошибка
func (c *Catalog) SlotsForDay(day domain.WeekDay) []domain.TimeSlot {
	slots := c.byDay[day]
	out := make([]domain.TimeSlot, len(slots))
	copy(out, slots)
	return out
}

// Lookup ищет слот по id в рамках указанного дня
func (c *Catalog) Lookup(day domain.WeekDay, slotID string) (domain.TimeSlot, error) {
	slot, ok := c.byID[slotID]
	if !ok || slot.Day != day {
		return domain.TimeSlot{}, fmt.Errorf("%w: %s on %s", ErrUnknownSlot, slotID, day)
	}
	return slot, nil
}

// LookupByID ищет слот по глобально уникальному id
func (c *Catalog) LookupByID(slotID string) (domain.TimeSlot, error) {
	slot, ok := c.byID[slotID]
	if !ok {
		return domain.TimeSlot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}
	return slot, nil
}

// DurationOf возвращает длительность слота в часах
func (c *Catalog) DurationOf(day domain.WeekDay, slotID string) (int, error) {
	slot, err := c.Lookup(day, slotID)
	if err != nil {
		return 0, err
	}
	return slot.DurationHours, nil
}

// Has сообщает, есть ли слот в каталоге для дня
func (c *Catalog) Has(day domain.WeekDay, slotID string) bool {
	_, err := c.Lookup(day, slotID)
	return err == nil
}

// Days возвращает дни, в которые есть хотя бы один слот, в календарном порядке
func (c *Catalog) Days() []domain.WeekDay {
	days := make([]domain.WeekDay, 0, len(domain.WeekDays))
	for _, day := range domain.WeekDays {
		if len(c.byDay[day]) > 0 {
			days = append(days, day)
		}
	}
	return days
}

// All возвращает все слоты каталога: по дням в календарном порядке, внутри дня по времени
func (c *Catalog) All() []domain.TimeSlot {
	all := make([]domain.TimeSlot, 0, len(c.byID))
	for _, day := range domain.WeekDays {
		all = append(all, c.byDay[day]...)
	}
	return all
}

// Len возвращает количество слотов
func (c *Catalog) Len() int {
	return len(c.byID)
}
