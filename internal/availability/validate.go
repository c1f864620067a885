package availability

import (
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// Validate проверяет кандидата на бронь и возвращает nil (accepted) или
// типизированную причину отказа. Чистый предикат без побочных эффектов.
//
// Проверки идут строго по порядку и обрываются на первой ошибке — порядок
// определяет, какое сообщение увидит пользователь:
//  1. конец позже начала, иначе ErrInvalidRange
//  2. начало и конец в один календарный день, иначе ErrMultiDayNotSupported
//  3. день недели открыт, иначе ErrDayNotAvailable
//  4. диапазон внутри рабочего окна, иначе ErrOutsideOperatingHours
//  5. нет пересечений с занятыми диапазонами, иначе ErrSlotOccupied
//  6. начало не в прошлом (только для сегодняшней даты), иначе ErrPastTime
//
// Результат консультативный: авторитетная проверка выполняется повторно
// внутри сериализуемой транзакции при создании брони.
func Validate(
	schedule *domain.SpaceSchedule,
	ranges []domain.OccupiedRange,
	req *domain.ReservationRequest,
	now time.Time,
) error {
	// 1. Конец строго позже начала
	sameDay := isSameDay(req.StartDate, req.EndDate)
	if dateOnly(req.EndDate).Before(dateOnly(req.StartDate)) {
		return ErrInvalidRange
	}
	if sameDay && !req.EndTime.IsAfter(req.StartTime) {
		return ErrInvalidRange
	}

	// 2. Бронь не пересекает границу календарного дня
	if !sameDay {
		return ErrMultiDayNotSupported
	}

	// 3. День недели открыт
	window, err := ResolveWindow(schedule, weekdayOf(req.StartDate))
	if err != nil {
		return err
	}
	if window == nil {
		return ErrDayNotAvailable
	}

	// 4. Диапазон внутри рабочего окна
	if req.StartTime.IsBefore(window.Open) || req.EndTime.IsAfter(window.Close) {
		return ErrOutsideOperatingHours
	}

	// 5. Нет пересечений с существующими бронями
	for _, r := range OccupiedOn(ranges, req.StartDate) {
		if rangesConflict(req.StartTime, req.EndTime, r.StartTime, r.EndTime) {
			return ErrSlotOccupied
		}
	}

	// 6. Начало не в прошлом (актуально только для сегодняшней даты)
	if isSameDay(req.StartDate, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		return ErrPastTime
	}

	return nil
}

// rangesConflict проверяет пересечение двух диапазонов с ВКЛЮЧИТЕЛЬНЫМИ
// границами: бронь, заканчивающаяся ровно в 12:00, конфликтует с бронью,
// начинающейся в 12:00. Стыковка вплотную запрещена — между бронями нужен
// свободный шаг сетки. Проверка симметрична относительно аргументов.
func rangesConflict(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return !aStart.IsAfter(bEnd) && !bStart.IsAfter(aEnd)
}

// dateOnly обнуляет время, чтобы сравнивать только календарные даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
