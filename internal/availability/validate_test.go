package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

func request(date time.Time, start, end types.TimeString) *domain.ReservationRequest {
	return &domain.ReservationRequest{
		SpaceID:    1,
		ResidentID: 42,
		StartDate:  date,
		StartTime:  start,
		EndDate:    date,
		EndTime:    end,
	}
}

// Сценарий A: открытый понедельник, броней нет, запрос 09:00-10:00 — принят
func TestValidate_Accepted(t *testing.T) {
	err := Validate(mondaySchedule(), nil, request(futureMonday, "09:00", "10:00"), fixedNow)
	assert.NoError(t, err)
}

// Сценарий B: существующая бронь 10:00-12:00, запрос 09:30-10:30 —
// конфликт (касание границы 10:00 тоже считается пересечением)
func TestValidate_SlotOccupied(t *testing.T) {
	ranges := []domain.OccupiedRange{
		{Date: futureMonday, StartTime: "10:00", EndTime: "12:00"},
	}

	err := Validate(mondaySchedule(), ranges, request(futureMonday, "09:30", "10:30"), fixedNow)
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

// Стыкующиеся вплотную брони тоже конфликт: границы включительны
func TestValidate_TouchingBoundariesConflict(t *testing.T) {
	ranges := []domain.OccupiedRange{
		{Date: futureMonday, StartTime: "10:00", EndTime: "12:00"},
	}

	t.Run("ends exactly at existing start", func(t *testing.T) {
		err := Validate(mondaySchedule(), ranges, request(futureMonday, "09:00", "10:00"), fixedNow)
		assert.ErrorIs(t, err, ErrSlotOccupied)
	})

	t.Run("starts exactly at existing end", func(t *testing.T) {
		err := Validate(mondaySchedule(), ranges, request(futureMonday, "12:00", "13:00"), fixedNow)
		assert.ErrorIs(t, err, ErrSlotOccupied)
	})

	t.Run("gap of one grid step is fine", func(t *testing.T) {
		err := Validate(mondaySchedule(), ranges, request(futureMonday, "12:30", "13:30"), fixedNow)
		assert.NoError(t, err)
	})
}

// Сценарий C: запрос 17:00-19:00 при закрытии в 18:00 — вне рабочих часов
func TestValidate_OutsideOperatingHours(t *testing.T) {
	err := Validate(mondaySchedule(), nil, request(futureMonday, "17:00", "19:00"), fixedNow)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	err = Validate(mondaySchedule(), nil, request(futureMonday, "07:00", "09:00"), fixedNow)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

// Сценарий D: воскресенье без правила — день недоступен
func TestValidate_DayNotAvailable(t *testing.T) {
	err := Validate(mondaySchedule(), nil, request(sunday, "09:00", "10:00"), fixedNow)
	assert.ErrorIs(t, err, ErrDayNotAvailable)
}

func TestValidate_BlockedWeekday(t *testing.T) {
	schedule := mondaySchedule()
	schedule.BlockedWeekdays = []time.Weekday{time.Monday}

	err := Validate(schedule, nil, request(futureMonday, "09:00", "10:00"), fixedNow)
	assert.ErrorIs(t, err, ErrDayNotAvailable)
}

// Сценарий E: start == end — некорректный диапазон
func TestValidate_InvalidRange(t *testing.T) {
	err := Validate(mondaySchedule(), nil, request(futureMonday, "10:00", "10:00"), fixedNow)
	assert.ErrorIs(t, err, ErrInvalidRange)

	err = Validate(mondaySchedule(), nil, request(futureMonday, "11:00", "10:00"), fixedNow)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestValidate_MultiDayNotSupported(t *testing.T) {
	req := request(futureMonday, "17:00", "10:00")
	req.EndDate = futureMonday.AddDate(0, 0, 1)

	err := Validate(mondaySchedule(), nil, req, fixedNow)
	assert.ErrorIs(t, err, ErrMultiDayNotSupported)
}

// Сценарий F: запрос на сегодня с началом раньше текущего времени
func TestValidate_PastTime(t *testing.T) {
	now := time.Date(2026, 9, 7, 10, 10, 0, 0, time.UTC)

	err := Validate(mondaySchedule(), nil, request(futureMonday, "10:00", "11:00"), now)
	assert.ErrorIs(t, err, ErrPastTime)

	// то же время на будущую дату проходит
	nextMonday := futureMonday.AddDate(0, 0, 7)
	err = Validate(mondaySchedule(), nil, request(nextMonday, "10:00", "11:00"), now)
	assert.NoError(t, err)
}

// Порядок проверок: занятость сообщается раньше прошедшего времени,
// прошедшее время проверяется последним
func TestValidate_CheckOrder(t *testing.T) {
	now := time.Date(2026, 9, 7, 10, 10, 0, 0, time.UTC)
	ranges := []domain.OccupiedRange{
		{Date: futureMonday, StartTime: "09:00", EndTime: "11:00"},
	}

	err := Validate(mondaySchedule(), ranges, request(futureMonday, "10:00", "11:00"), now)
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

// Детерминизм: повторная валидация с теми же входами даёт тот же результат
func TestValidate_Deterministic(t *testing.T) {
	ranges := []domain.OccupiedRange{
		{Date: futureMonday, StartTime: "10:00", EndTime: "12:00"},
	}
	req := request(futureMonday, "13:00", "14:00")

	first := Validate(mondaySchedule(), ranges, req, fixedNow)
	second := Validate(mondaySchedule(), ranges, req, fixedNow)
	assert.Equal(t, first, second)
	assert.NoError(t, first)
}

// Симметрия пересечения: A конфликтует с B <=> B конфликтует с A
func TestRangesConflict_Symmetric(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd types.TimeString
		bStart, bEnd types.TimeString
		conflict     bool
	}{
		{"overlap", "09:30", "10:30", "10:00", "12:00", true},
		{"touching", "09:00", "10:00", "10:00", "12:00", true},
		{"contained", "10:30", "11:00", "10:00", "12:00", true},
		{"disjoint", "08:00", "09:30", "10:00", "12:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.conflict, rangesConflict(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			require.Equal(t, tc.conflict, rangesConflict(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestValidate_DuplicateRuleSurfaced(t *testing.T) {
	schedule := mondaySchedule()
	schedule.Rules = append(schedule.Rules, domain.WeeklyAvailabilityRule{
		Weekday: time.Monday, OpenTime: "09:00", CloseTime: "17:00",
	})

	err := Validate(schedule, nil, request(futureMonday, "09:00", "10:00"), fixedNow)
	assert.ErrorIs(t, err, ErrDuplicateRule)
}

func TestResolveWindow_InvalidWindow(t *testing.T) {
	schedule := &domain.SpaceSchedule{
		Rules: []domain.WeeklyAvailabilityRule{
			{Weekday: time.Monday, OpenTime: "18:00", CloseTime: "08:00"},
		},
	}

	_, err := ResolveWindow(schedule, time.Monday)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestResolveWindow_ClosedWithoutRule(t *testing.T) {
	window, err := ResolveWindow(mondaySchedule(), time.Wednesday)
	require.NoError(t, err)
	assert.Nil(t, window)
}
