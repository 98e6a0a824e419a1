package set_capacity

// SetCapacityRequest HTTP request model
type SetCapacityRequest struct {
	TotalVacancies int `json:"totalVacancies" validate:"required,min=1"`
}
