package catalog

import "errors"

var (
	// ErrUnknownSlot возвращается, когда слот не найден в каталоге для указанного дня
	ErrUnknownSlot = errors.New("catalog: unknown slot")

	// ErrInvalidCatalog возвращается при противоречивой конфигурации каталога
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")
)
