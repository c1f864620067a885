package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// Slots перечисляет временные точки дня для пикера времени.
// Точки идут от открытия до закрытия ВКЛЮЧИТЕЛЬНО с шагом domain.SlotStepMinutes:
// закрывающая точка нужна как конец последнего диапазона.
// Для закрытого дня возвращается пустой список.
//
// Каждая точка аннотируется:
//   - occupied: точка лежит внутри [start, end] существующей брони,
//     ОБЕ границы включительно (см. rangesConflict — политика согласована
//     с валидатором: стыкующиеся брони считаются конфликтом)
//   - past: дата — сегодня, и точка раньше текущего wall-clock времени
func Slots(
	schedule *domain.SpaceSchedule,
	ranges []domain.OccupiedRange,
	date time.Time,
	now time.Time,
) ([]domain.Slot, error) {
	window, err := ResolveWindow(schedule, weekdayOf(date))
	if err != nil {
		return nil, err
	}
	if window == nil {
		return []domain.Slot{}, nil
	}

	openMin, err := window.Open.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	closeMin, err := window.Close.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	occupied := OccupiedOn(ranges, date)

	today := isSameDay(date, now)
	nowTime := types.NewTimeString(now)

	slots := make([]domain.Slot, 0, (closeMin-openMin)/domain.SlotStepMinutes+1)
	for m := openMin; m <= closeMin; m += domain.SlotStepMinutes {
		t, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}

		slots = append(slots, domain.Slot{
			Time:     t,
			Occupied: isOccupied(t, occupied),
			Past:     today && t.IsBefore(nowTime),
		})
	}

	return slots, nil
}

// isOccupied проверяет, что точка лежит внутри какого-либо занятого диапазона.
// Границы включительно: точка, совпадающая с началом или концом брони, занята.
func isOccupied(t types.TimeString, ranges []domain.OccupiedRange) bool {
	for _, r := range ranges {
		if !t.IsBefore(r.StartTime) && !t.IsAfter(r.EndTime) {
			return true
		}
	}
	return false
}

// DayIsBookable возвращает true, если день открыт и в нём есть хотя бы
// одна свободная и не прошедшая точка. Используется для месячной сетки
// календаря; чисто производное значение, пересчитывается на каждый запрос.
func DayIsBookable(
	schedule *domain.SpaceSchedule,
	ranges []domain.OccupiedRange,
	date time.Time,
	now time.Time,
) (bool, error) {
	slots, err := Slots(schedule, ranges, date, now)
	if err != nil {
		return false, err
	}

	for i := range slots {
		if slots[i].IsBookable() {
			return true, nil
		}
	}
	return false, nil
}
