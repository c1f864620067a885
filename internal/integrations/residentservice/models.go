package residentservice

// Resident модель резидента из ResidentService
type Resident struct {
	ID         int64  `json:"id"`
	CondoID    int64  `json:"condo_id"`
	Name       string `json:"name"`
	UnitNumber string `json:"unit_number"`
	Phone      string `json:"phone"`
	Active     bool   `json:"active"`
}

// ErrorResponse модель ошибки от ResidentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
