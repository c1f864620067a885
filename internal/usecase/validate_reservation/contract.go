package validate_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
)

// SpaceRepository интерфейс репозитория помещений
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CommonSpace, error)
	GetWeeklySchedule(ctx context.Context, spaceID int64) (*domain.SpaceSchedule, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetBySpaceWithFilter(ctx context.Context, filter domain.SpaceReservationsFilter) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
