package availability

import (
	"sort"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
)

// OccupiedOn возвращает занятые диапазоны на указанную дату,
// отсортированные по времени начала. Диапазоны других дат отбрасываются.
// Источник данных (хранилище броней) внешний; здесь только нормализация формы.
func OccupiedOn(ranges []domain.OccupiedRange, date time.Time) []domain.OccupiedRange {
	result := make([]domain.OccupiedRange, 0, len(ranges))
	for _, r := range ranges {
		if isSameDay(r.Date, date) {
			result = append(result, r)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
