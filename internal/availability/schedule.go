package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// Window рабочее окно помещения в конкретный день недели
type Window struct {
	Open  types.TimeString
	Close types.TimeString
}

// ResolveWindow возвращает рабочее окно помещения на указанный день недели.
// nil без ошибки означает, что день закрыт.
//
// Приоритеты:
//   - заблокированный день недели закрыт, даже если правило существует
//   - день без правила закрыт
//   - несколько правил на один день — ошибка конфигурации
func ResolveWindow(schedule *domain.SpaceSchedule, weekday time.Weekday) (*Window, error) {
	if schedule.IsBlocked(weekday) {
		return nil, nil
	}

	rules := schedule.RulesFor(weekday)
	if len(rules) == 0 {
		return nil, nil
	}
	if len(rules) > 1 {
		return nil, fmt.Errorf("%w: %s has %d rules", ErrDuplicateRule, weekday, len(rules))
	}

	rule := rules[0]
	if err := rule.OpenTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidWindow, weekday, err)
	}
	if err := rule.CloseTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidWindow, weekday, err)
	}
	if !rule.OpenTime.IsBefore(rule.CloseTime) {
		return nil, fmt.Errorf("%w: %s %s-%s", ErrInvalidWindow, weekday, rule.OpenTime, rule.CloseTime)
	}

	return &Window{Open: rule.OpenTime, Close: rule.CloseTime}, nil
}

// weekdayOf возвращает день недели по компонентам календарной даты.
// Дата принадлежит ровно одному дню недели — никаких конвертаций через
// instant/таймзону, которые могли бы сдвинуть дату.
func weekdayOf(date time.Time) time.Weekday {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Weekday()
}
