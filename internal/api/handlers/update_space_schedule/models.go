package update_space_schedule

import (
	"github.com/m04kA/Condo-ReservationService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Rules           []WeekdayRule `json:"rules"`
	BlockedWeekdays []int         `json:"blockedWeekdays"`
}

// WeekdayRule правило доступности на день недели
type WeekdayRule struct {
	Weekday   int    `json:"weekday"`   // 0 = Sunday ... 6 = Saturday
	OpenTime  string `json:"openTime"`  // "08:00"
	CloseTime string `json:"closeTime"` // "22:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID int64, isManager bool) *models.UpdateScheduleRequest {
	rules := make([]models.WeekdayRule, len(r.Rules))
	for i, rule := range r.Rules {
		rules[i] = models.WeekdayRule{
			Weekday:   rule.Weekday,
			OpenTime:  rule.OpenTime,
			CloseTime: rule.CloseTime,
		}
	}

	return &models.UpdateScheduleRequest{
		UserID:          userID,
		IsManager:       isManager,
		Rules:           rules,
		BlockedWeekdays: r.BlockedWeekdays,
	}
}
