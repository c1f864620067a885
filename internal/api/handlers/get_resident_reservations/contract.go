package get_resident_reservations

import (
	"context"

	"github.com/m04kA/Condo-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetResidentReservations(ctx context.Context, req *models.GetResidentReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
