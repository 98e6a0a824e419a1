package domain

// Default configuration values
const (
	DefaultSeatsPerSlot = 20
)

// MinSeatsPerSlot минимальная вместимость слота; верхней границы нет
const MinSeatsPerSlot = 1

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Attendance bands for the frequency report
const (
	AttendanceExcellentPercent = 90
	AttendanceGoodPercent      = 80
	AttendanceRegularPercent   = 70
)
