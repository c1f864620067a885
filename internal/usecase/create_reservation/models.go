package create_reservation

import (
	"time"

	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	SpaceID    int64            // ID помещения
	ResidentID int64            // ID резидента
	StartDate  time.Time        // Дата начала (без времени)
	StartTime  types.TimeString // Время начала ("10:00")
	EndDate    time.Time        // Дата конца (должна совпадать с датой начала)
	EndTime    types.TimeString // Время конца ("12:00")
	TZOffset   string           // Смещение UTC кондоминиума ("+03:00")
	Notes      *string          // Заметки (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID              int64
	SpaceID         int64
	ResidentID      int64
	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	TZOffset        string

	// StartsAt/EndsAt — привязанные к смещению моменты ("2026-09-07T10:00:00+03:00").
	// Wall-clock время из запроса никогда не сдвигается, к нему только
	// приклеивается смещение.
	StartsAt string
	EndsAt   string

	Status       string
	ResidentName *string
	UnitNumber   *string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
