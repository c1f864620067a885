package domain

import (
	"time"

	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// WeeklyAvailabilityRule окно работы помещения в конкретный день недели.
// Времена — wall-clock "HH:MM" без таймзоны.
type WeeklyAvailabilityRule struct {
	Weekday   time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// SpaceSchedule недельное расписание помещения: набор правил по дням недели
// плюс список принудительно закрытых дней.
// День недели без правила считается закрытым. Заблокированный день закрыт,
// даже если правило для него существует.
type SpaceSchedule struct {
	SpaceID         int64
	Rules           []WeeklyAvailabilityRule
	BlockedWeekdays []time.Weekday
}

// IsBlocked returns true if the weekday is force-closed for the space
func (s *SpaceSchedule) IsBlocked(weekday time.Weekday) bool {
	for _, d := range s.BlockedWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// RulesFor returns all rules configured for the weekday.
// Больше одного правила на день — ошибка конфигурации, решает вызывающий.
func (s *SpaceSchedule) RulesFor(weekday time.Weekday) []WeeklyAvailabilityRule {
	var rules []WeeklyAvailabilityRule
	for _, r := range s.Rules {
		if r.Weekday == weekday {
			rules = append(rules, r)
		}
	}
	return rules
}
