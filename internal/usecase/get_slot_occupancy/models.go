package get_slot_occupancy

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

// Options настройки usecase из конфигурации
type Options struct {
	AutoInitialize bool // заполнять недостающие строки реестра при первом чтении
	DefaultSeats   int  // количество мест для автозаполнения
}

// Request модель запроса заполненности
type Request struct {
	Day    string // день недели; пусто = все дни каталога
	SlotID string // один слот; не сочетается с Day
}

// Response модель ответа
type Response struct {
	Slots       []Slot           // слоты в порядке каталога
	Warnings    []StudentWarning // студенты, исключенные из подсчета
	Initialized int              // строк реестра создано автозаполнением
}

// Slot заполненность одного слота
type Slot struct {
	SlotID           string
	Day              domain.WeekDay
	DisplayTime      string
	DurationHours    int
	Enrolled         int
	CapacityKnown    bool // false: строки в реестре нет
	TotalVacancies   int
	AvailableSeats   int // может быть отрицательным
	OccupancyPercent float64
	IsFull           bool
	IsOverCapacity   bool
}

// StudentWarning студент с расписанием, не согласованным с каталогом
type StudentWarning struct {
	StudentID uuid.UUID
	Message   string
}
