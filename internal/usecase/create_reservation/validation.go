package create_reservation

import (
	"fmt"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Семантические проверки (диапазон, расписание, занятость) выполняет
// движок доступности внутри транзакции.
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.ResidentID <= 0 {
		return fmt.Errorf("%w: residentID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	// Проверяем смещение на дате начала: NormalizeLocalDateTime валидирует
	// и формат "±HH:MM", и согласованность даты со временем.
	local := req.StartDate.Format(domain.DateFormat) + "T" + req.StartTime.String()
	if _, err := types.NormalizeLocalDateTime(local, req.TZOffset); err != nil {
		return fmt.Errorf("%w: invalid tzOffset %q: %v", ErrInvalidInput, req.TZOffset, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
