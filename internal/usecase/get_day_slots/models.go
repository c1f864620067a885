package get_day_slots

import (
	"time"

	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	SpaceID int64     // ID помещения
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	SpaceID int64     // ID помещения
	Date    time.Time // Дата, на которую запрашивались слоты
	Open    bool      // Открыто ли помещение в этот день
	Slots   []Slot    // Временные точки дня (пусто, если закрыто)
}

// Slot временная точка внутри рабочего окна дня
type Slot struct {
	Time     types.TimeString // Время точки (например, "10:30")
	Occupied bool             // Точка занята существующей бронью
	Past     bool             // Точка уже прошла (только для сегодняшней даты)
}
