package reservations

import (
	"context"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByResident(ctx context.Context, residentID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetBySpaceWithFilter(ctx context.Context, filter domain.SpaceReservationsFilter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
