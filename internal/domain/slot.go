package domain

import "github.com/m04kA/Condo-ReservationService/pkg/types"

// Slot дискретная временная точка внутри рабочего окна дня.
// Эфемерное значение: пересчитывается на каждый запрос, не хранится.
type Slot struct {
	Time     types.TimeString
	Occupied bool
	Past     bool
}

// IsBookable returns true if the slot is neither occupied nor in the past
func (s *Slot) IsBookable() bool {
	return !s.Occupied && !s.Past
}

// DayAvailability доступность одного календарного дня для месячной сетки
type DayAvailability struct {
	Date     string // YYYY-MM-DD
	Bookable bool
}
