package models

import (
	"errors"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при некорректном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTime возвращается при некорректном времени
	ErrInvalidTime = errors.New("invalid time")
)

// Request модели

// WeekdayRule правило доступности на день недели
type WeekdayRule struct {
	Weekday   int    `json:"weekday"`   // 0 = Sunday ... 6 = Saturday
	OpenTime  string `json:"openTime"`  // "08:00"
	CloseTime string `json:"closeTime"` // "22:00"
}

// UpdateScheduleRequest запрос на замену недельного расписания помещения
type UpdateScheduleRequest struct {
	UserID          int64         `json:"userId"`
	IsManager       bool          `json:"-"`
	Rules           []WeekdayRule `json:"rules"`
	BlockedWeekdays []int         `json:"blockedWeekdays"`
}

// ToDomainSchedule конвертирует request в domain модель
func (r *UpdateScheduleRequest) ToDomainSchedule(spaceID int64) (*domain.SpaceSchedule, error) {
	schedule := &domain.SpaceSchedule{
		SpaceID: spaceID,
		Rules:   make([]domain.WeeklyAvailabilityRule, 0, len(r.Rules)),
	}

	for _, rule := range r.Rules {
		weekday, err := toWeekday(rule.Weekday)
		if err != nil {
			return nil, err
		}

		openTime, err := types.NewTimeStringFromString(rule.OpenTime)
		if err != nil {
			return nil, ErrInvalidTime
		}

		closeTime, err := types.NewTimeStringFromString(rule.CloseTime)
		if err != nil {
			return nil, ErrInvalidTime
		}

		schedule.Rules = append(schedule.Rules, domain.WeeklyAvailabilityRule{
			Weekday:   weekday,
			OpenTime:  openTime,
			CloseTime: closeTime,
		})
	}

	for _, d := range r.BlockedWeekdays {
		weekday, err := toWeekday(d)
		if err != nil {
			return nil, err
		}
		schedule.BlockedWeekdays = append(schedule.BlockedWeekdays, weekday)
	}

	return schedule, nil
}

// Response модели

// ScheduleResponse ответ с недельным расписанием помещения
type ScheduleResponse struct {
	SpaceID         int64         `json:"spaceId"`
	Rules           []WeekdayRule `json:"rules"`
	BlockedWeekdays []int         `json:"blockedWeekdays"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.SpaceSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		SpaceID:         s.SpaceID,
		Rules:           make([]WeekdayRule, 0, len(s.Rules)),
		BlockedWeekdays: make([]int, 0, len(s.BlockedWeekdays)),
	}

	for _, rule := range s.Rules {
		resp.Rules = append(resp.Rules, WeekdayRule{
			Weekday:   int(rule.Weekday),
			OpenTime:  rule.OpenTime.String(),
			CloseTime: rule.CloseTime.String(),
		})
	}

	for _, d := range s.BlockedWeekdays {
		resp.BlockedWeekdays = append(resp.BlockedWeekdays, int(d))
	}

	return resp
}

// toWeekday конвертирует число в time.Weekday с валидацией
func toWeekday(d int) (time.Weekday, error) {
	if d < 0 || d > 6 {
		return 0, ErrInvalidWeekday
	}
	return time.Weekday(d), nil
}
