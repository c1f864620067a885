package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
)

// mondaySchedule помещение, открытое по понедельникам 08:00-18:00
func mondaySchedule() *domain.SpaceSchedule {
	return &domain.SpaceSchedule{
		SpaceID: 1,
		Rules: []domain.WeeklyAvailabilityRule{
			{Weekday: time.Monday, OpenTime: "08:00", CloseTime: "18:00"},
		},
	}
}

var (
	// 2026-09-07 — понедельник, 2026-09-06 — воскресенье
	futureMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	sunday       = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	// фиксированное "сейчас" задолго до тестовых дат
	fixedNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
)

func TestSlots_OpenDayCount(t *testing.T) {
	slots, err := Slots(mondaySchedule(), nil, futureMonday, fixedNow)
	require.NoError(t, err)

	// 08:00..18:00 включительно с шагом 30 минут: (600/30)+1 = 21 точка
	require.Len(t, slots, 21)
	assert.Equal(t, "08:00", slots[0].Time.String())
	assert.Equal(t, "18:00", slots[len(slots)-1].Time.String())

	for _, s := range slots {
		assert.False(t, s.Occupied, "slot %s should be free", s.Time)
		assert.False(t, s.Past, "slot %s should not be past", s.Time)
	}
}

func TestSlots_ClosedDayIsEmpty(t *testing.T) {
	slots, err := Slots(mondaySchedule(), nil, sunday, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlots_BlockedWeekdayIsEmpty(t *testing.T) {
	schedule := mondaySchedule()
	schedule.BlockedWeekdays = []time.Weekday{time.Monday}

	slots, err := Slots(schedule, nil, futureMonday, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlots_OccupiedInclusiveBoundaries(t *testing.T) {
	ranges := []domain.OccupiedRange{
		{Date: futureMonday, StartTime: "10:00", EndTime: "12:00"},
	}

	slots, err := Slots(mondaySchedule(), ranges, futureMonday, fixedNow)
	require.NoError(t, err)

	byTime := map[string]domain.Slot{}
	for _, s := range slots {
		byTime[s.Time.String()] = s
	}

	// обе границы диапазона заняты
	assert.True(t, byTime["10:00"].Occupied)
	assert.True(t, byTime["11:00"].Occupied)
	assert.True(t, byTime["12:00"].Occupied)

	assert.False(t, byTime["09:30"].Occupied)
	assert.False(t, byTime["12:30"].Occupied)
}

func TestSlots_IgnoresRangesOfOtherDates(t *testing.T) {
	otherMonday := futureMonday.AddDate(0, 0, 7)
	ranges := []domain.OccupiedRange{
		{Date: otherMonday, StartTime: "10:00", EndTime: "12:00"},
	}

	slots, err := Slots(mondaySchedule(), ranges, futureMonday, fixedNow)
	require.NoError(t, err)

	for _, s := range slots {
		assert.False(t, s.Occupied)
	}
}

func TestSlots_PastMarkingForToday(t *testing.T) {
	// "сейчас" — тестовый понедельник, 12:10
	now := time.Date(2026, 9, 7, 12, 10, 0, 0, time.UTC)

	slots, err := Slots(mondaySchedule(), nil, futureMonday, now)
	require.NoError(t, err)

	for _, s := range slots {
		if s.Time.IsBefore("12:10") {
			assert.True(t, s.Past, "slot %s should be past", s.Time)
		} else {
			assert.False(t, s.Past, "slot %s should not be past", s.Time)
		}
	}
}

func TestSlots_DuplicateRuleSurfaced(t *testing.T) {
	schedule := mondaySchedule()
	schedule.Rules = append(schedule.Rules, domain.WeeklyAvailabilityRule{
		Weekday: time.Monday, OpenTime: "09:00", CloseTime: "17:00",
	})

	_, err := Slots(schedule, nil, futureMonday, fixedNow)
	assert.ErrorIs(t, err, ErrDuplicateRule)
}

func TestDayIsBookable_BlockedWeekdayAlwaysFalse(t *testing.T) {
	schedule := mondaySchedule()
	schedule.BlockedWeekdays = []time.Weekday{time.Monday}

	bookable, err := DayIsBookable(schedule, nil, futureMonday, fixedNow)
	require.NoError(t, err)
	assert.False(t, bookable)
}

func TestDayIsBookable_ClosedSunday(t *testing.T) {
	bookable, err := DayIsBookable(mondaySchedule(), nil, sunday, fixedNow)
	require.NoError(t, err)
	assert.False(t, bookable)
}

func TestDayIsBookable_FullyOccupiedDay(t *testing.T) {
	ranges := []domain.OccupiedRange{
		{Date: futureMonday, StartTime: "08:00", EndTime: "18:00"},
	}

	bookable, err := DayIsBookable(mondaySchedule(), ranges, futureMonday, fixedNow)
	require.NoError(t, err)
	assert.False(t, bookable)
}

func TestDayIsBookable_MatchesSlots(t *testing.T) {
	// эквивалентность: день bookable <=> есть хотя бы одна свободная
	// не прошедшая точка
	ranges := []domain.OccupiedRange{
		{Date: futureMonday, StartTime: "08:00", EndTime: "13:00"},
	}

	slots, err := Slots(mondaySchedule(), ranges, futureMonday, fixedNow)
	require.NoError(t, err)

	hasFree := false
	for _, s := range slots {
		if s.IsBookable() {
			hasFree = true
			break
		}
	}

	bookable, err := DayIsBookable(mondaySchedule(), ranges, futureMonday, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, hasFree, bookable)
	assert.True(t, bookable)
}

func TestOccupiedOn_SortsAndFilters(t *testing.T) {
	ranges := []domain.OccupiedRange{
		{Date: futureMonday, StartTime: "14:00", EndTime: "15:00"},
		{Date: sunday, StartTime: "08:00", EndTime: "09:00"},
		{Date: futureMonday, StartTime: "09:00", EndTime: "10:00"},
	}

	result := OccupiedOn(ranges, futureMonday)
	require.Len(t, result, 2)
	assert.Equal(t, "09:00", result[0].StartTime.String())
	assert.Equal(t, "14:00", result[1].StartTime.String())
}
