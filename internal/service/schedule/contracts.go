package schedule

import (
	"context"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
)

// SpaceRepository интерфейс репозитория помещений
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CommonSpace, error)
	GetWeeklySchedule(ctx context.Context, spaceID int64) (*domain.SpaceSchedule, error)
	ReplaceWeeklySchedule(ctx context.Context, schedule *domain.SpaceSchedule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
