package update_space_schedule

import (
	"context"

	"github.com/m04kA/Condo-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateSpaceSchedule(ctx context.Context, spaceID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
