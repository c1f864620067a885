package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/internal/integrations/residentservice"
)

// SpaceRepository интерфейс репозитория помещений
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CommonSpace, error)
	GetWeeklySchedule(ctx context.Context, spaceID int64) (*domain.SpaceSchedule, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetBySpaceWithFilter(ctx context.Context, filter domain.SpaceReservationsFilter) ([]*domain.Reservation, error)
}

// ResidentServiceClient интерфейс клиента ResidentService
type ResidentServiceClient interface {
	GetActiveResident(ctx context.Context, residentID int64) (*residentservice.Resident, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
