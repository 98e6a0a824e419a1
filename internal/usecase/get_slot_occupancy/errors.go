package get_slot_occupancy

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slot_occupancy: invalid input data")

	// ErrSlotNotFound возвращается, если слота нет в каталоге
	ErrSlotNotFound = errors.New("get_slot_occupancy: slot not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_occupancy: internal error")
)
