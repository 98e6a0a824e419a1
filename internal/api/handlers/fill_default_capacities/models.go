package fill_default_capacities

// DefaultSeatsRequest HTTP request model
// Пустое тело означает количество мест из конфигурации
type DefaultSeatsRequest struct {
	DefaultSeats int `json:"defaultSeats" validate:"omitempty,min=1"`
}
