package validate_reservation

import (
	"errors"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/availability"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// Request модель запроса на проверку кандидата на бронь
type Request struct {
	SpaceID    int64            // ID помещения
	ResidentID int64            // ID резидента
	Date       time.Time        // Дата брони (без времени)
	StartTime  types.TimeString // Время начала ("10:00")
	EndTime    types.TimeString // Время конца ("12:00")
}

// Коды причин отказа для UI. Стабильная часть контракта: фронтенд
// матчит по ним пользовательские сообщения.
const (
	ReasonInvalidRange          = "invalid_range"
	ReasonMultiDayNotSupported  = "multi_day_not_supported"
	ReasonDayNotAvailable       = "day_not_available"
	ReasonOutsideOperatingHours = "outside_operating_hours"
	ReasonSlotOccupied          = "slot_occupied"
	ReasonPastTime              = "past_time"
)

// Response результат консультативной проверки.
// Valid=true не гарантирует успешный коммит: авторитетная проверка
// повторяется в транзакции создания брони.
type Response struct {
	Valid  bool   // Прошёл ли кандидат все проверки
	Reason string // Код причины отказа (пустой, если Valid)
}

// rejectionReason отображает причину отказа движка в код для UI.
// false — ошибка не является отказом валидации.
func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, availability.ErrInvalidRange):
		return ReasonInvalidRange, true
	case errors.Is(err, availability.ErrMultiDayNotSupported):
		return ReasonMultiDayNotSupported, true
	case errors.Is(err, availability.ErrDayNotAvailable):
		return ReasonDayNotAvailable, true
	case errors.Is(err, availability.ErrOutsideOperatingHours):
		return ReasonOutsideOperatingHours, true
	case errors.Is(err, availability.ErrSlotOccupied):
		return ReasonSlotOccupied, true
	case errors.Is(err, availability.ErrPastTime):
		return ReasonPastTime, true
	default:
		return "", false
	}
}
