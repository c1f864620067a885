package cancel_reservation

import (
	"github.com/m04kA/Condo-ReservationService/internal/service/reservations/models"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelReservationRequest) ToServiceRequest(userID int64, isManager bool) *models.CancelReservationRequest {
	return &models.CancelReservationRequest{
		UserID:             userID,
		IsManager:          isManager,
		CancellationReason: r.CancellationReason,
	}
}
