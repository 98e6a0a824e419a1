package capacity

import "errors"

var (
	// ErrNotInitialized возвращается, когда строки вместимости еще нет (это не нулевая вместимость)
	ErrNotInitialized = errors.New("capacity.service: capacity not initialized")

	// ErrInvalidCapacity возвращается при попытке записать неположительную вместимость
	ErrInvalidCapacity = errors.New("capacity.service: invalid capacity")

	// ErrUnknownSlot возвращается, когда слота нет в каталоге
	ErrUnknownSlot = errors.New("capacity.service: unknown slot")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("capacity.service: internal error")
)
