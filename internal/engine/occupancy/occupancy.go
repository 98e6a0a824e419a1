// Package occupancy counts enrolled students per slot and derives available
// seats and occupancy from a single snapshot of the roster and the capacity
// ledger.
package occupancy

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

// Catalog источник слотов
type Catalog interface {
	SlotsForDay(day domain.WeekDay) []domain.TimeSlot
	LookupByID(slotID string) (domain.TimeSlot, error)
	Days() []domain.WeekDay
}

// ScheduleValidator проверяет расписание студента по каталогу
type ScheduleValidator interface {
	Validate(s domain.StudentSchedule) error
}

// CapacityLookup источник вместимости слотов
type CapacityLookup interface {
	// Capacity возвращает вместимость слота; ok=false, если строки в реестре нет
	Capacity(slotID string) (total int, ok bool)
}

// Snapshot снимок реестра вместимости: slot id -> количество мест
type Snapshot map[string]int

// Capacity реализует CapacityLookup
func (s Snapshot) Capacity(slotID string) (int, bool) {
	total, ok := s[slotID]
	return total, ok
}

// SlotOccupancy заполненность одного слота
type SlotOccupancy struct {
	Slot             domain.TimeSlot
	Enrolled         int
	CapacityKnown    bool
	TotalVacancies   int
	AvailableSeats   int
	OccupancyPercent float64
}

// IsFull returns true when no seat is left (or the slot is over capacity)
func (o SlotOccupancy) IsFull() bool {
	return o.CapacityKnown && o.AvailableSeats <= 0
}

// IsOverCapacity returns true when enrollment exceeds the configured seats
func (o SlotOccupancy) IsOverCapacity() bool {
	return o.CapacityKnown && o.AvailableSeats < 0
}

// CanAccept returns true when one more student fits
func (o SlotOccupancy) CanAccept() bool {
	return o.CapacityKnown && o.AvailableSeats > 0
}

// SkippedStudent студент, исключенный из подсчета из-за некорректных данных
type SkippedStudent struct {
	StudentID uuid.UUID
	Err       error
}

// Report результат расчета по набору слотов
type Report struct {
	Slots   []SlotOccupancy
	Skipped []SkippedStudent
}

// EnrolledCount считает активных студентов, у которых в расписании есть slotID в день day
// Завершившие курс студенты не учитываются
func EnrolledCount(roster []*domain.Student, day domain.WeekDay, slotID string) int {
	count := 0
	for _, student := range roster {
		if student == nil || !student.IsActive() {
			continue
		}
		if student.Schedule.Contains(day, slotID) {
			count++
		}
	}
	return count
}

// AvailableSeats возвращает свободные места; отрицательное значение означает перебор
func AvailableSeats(totalVacancies, enrolled int) int {
	return totalVacancies - enrolled
}

// Percent возвращает заполненность в процентах; 0 при нулевой вместимости
func Percent(enrolled, totalVacancies int) float64 {
	if totalVacancies <= 0 {
		return 0
	}
	return float64(enrolled*100) / float64(totalVacancies)
}

// Calculator считает заполненность слотов каталога
type Calculator struct {
	catalog   Catalog
	validator ScheduleValidator
}

// NewCalculator создает калькулятор
func NewCalculator(catalog Catalog, validator ScheduleValidator) *Calculator {
	return &Calculator{catalog: catalog, validator: validator}
}

// ForSlot считает заполненность одного слота по тем же правилам, что и Compute:
// студенты с некорректным расписанием исключаются и попадают в Skipped
// Неизвестный слот является ошибкой ErrUnknownSlot только этого запроса
func (c *Calculator) ForSlot(roster []*domain.Student, slotID string, capacities CapacityLookup) (Report, error) {
	slot, err := c.catalog.LookupByID(slotID)
	if err != nil {
		return Report{}, err
	}

	valid, skipped := c.partition(roster)
	return Report{
		Slots:   []SlotOccupancy{compute(slot, EnrolledCount(valid, slot.Day, slot.ID), capacities)},
		Skipped: skipped,
	}, nil
}

// Compute считает заполненность всех слотов указанных дней (всех дней каталога, если days пуст)
// Студенты с расписанием, не согласованным с каталогом, исключаются и попадают в Skipped;
// остальные строки считаются как обычно
func (c *Calculator) Compute(roster []*domain.Student, capacities CapacityLookup, days ...domain.WeekDay) Report {
	valid, skipped := c.partition(roster)

	if len(days) == 0 {
		days = c.catalog.Days()
	}

	report := Report{
		Slots:   make([]SlotOccupancy, 0),
		Skipped: skipped,
	}
	for _, day := range days {
		for _, slot := range c.catalog.SlotsForDay(day) {
			enrolled := EnrolledCount(valid, day, slot.ID)
			report.Slots = append(report.Slots, compute(slot, enrolled, capacities))
		}
	}

	return report
}

// partition отделяет активных студентов с корректным расписанием
func (c *Calculator) partition(roster []*domain.Student) ([]*domain.Student, []SkippedStudent) {
	valid := make([]*domain.Student, 0, len(roster))
	skipped := make([]SkippedStudent, 0)

	for _, student := range roster {
		if student == nil || !student.IsActive() {
			continue
		}
		if student.ScheduleErr != nil {
			skipped = append(skipped, SkippedStudent{StudentID: student.ID, Err: student.ScheduleErr})
			continue
		}
		if err := c.validator.Validate(student.Schedule); err != nil {
			skipped = append(skipped, SkippedStudent{StudentID: student.ID, Err: err})
			continue
		}
		valid = append(valid, student)
	}

	return valid, skipped
}

func compute(slot domain.TimeSlot, enrolled int, capacities CapacityLookup) SlotOccupancy {
	result := SlotOccupancy{
		Slot:     slot,
		Enrolled: enrolled,
	}

	if capacities == nil {
		return result
	}
	total, ok := capacities.Capacity(slot.ID)
	if !ok {
		return result
	}

	result.CapacityKnown = true
	result.TotalVacancies = total
	result.AvailableSeats = AvailableSeats(total, enrolled)
	result.OccupancyPercent = Percent(enrolled, total)
	return result
}
