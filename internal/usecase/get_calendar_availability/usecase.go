package get_calendar_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/availability"
	"github.com/m04kA/Condo-ReservationService/internal/domain"
	spaceRepo "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
)

// UseCase use case для построения месячной сетки доступности
type UseCase struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case построения месячной сетки.
// Сетка чисто производная: пересчитывается при каждой смене месяца
// или помещения, ничего не кешируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarAvailability: space=%d, year=%d, month=%d", req.SpaceID, req.Year, req.Month)

	// 1. Валидация входных данных
	if req.SpaceID <= 0 {
		return nil, fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be in 1..12", ErrInvalidInput)
	}
	if req.Year < 2000 || req.Year > 2200 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidInput, req.Year)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование помещения
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetCalendarAvailability: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetCalendarAvailability: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 4. Получаем недельное расписание
	schedule, err := uc.spaceRepo.GetWeeklySchedule(ctx, req.SpaceID)
	if err != nil {
		uc.logger.Error("GetCalendarAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Получаем занятость на весь месяц одним запросом
	firstDay := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	filter := domain.SpaceReservationsFilter{
		SpaceID:   req.SpaceID,
		StartDate: &firstDay,
		EndDate:   &lastDay,
	}

	reservations, err := uc.reservationRepo.GetBySpaceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendarAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	ranges := occupiedRanges(reservations)

	// 6. Помечаем каждый день месяца
	days := make([]Day, 0, lastDay.Day())
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		bookable, err := availability.DayIsBookable(schedule, ranges, day, now)
		if err != nil {
			if errors.Is(err, availability.ErrDuplicateRule) || errors.Is(err, availability.ErrInvalidWindow) {
				uc.logger.Error("GetCalendarAvailability: schedule misconfigured for space id=%d: %v", req.SpaceID, err)
				return nil, fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
			}
			uc.logger.Error("GetCalendarAvailability: failed to compute day %s: %v",
				day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
		}

		days = append(days, Day{
			Date:     day.Format(domain.DateFormat),
			Bookable: bookable,
		})
	}

	uc.logger.Info("GetCalendarAvailability: computed %d days for space=%d, %d-%02d",
		len(days), req.SpaceID, req.Year, req.Month)

	return &Response{
		SpaceID: req.SpaceID,
		Year:    req.Year,
		Month:   req.Month,
		Days:    days,
	}, nil
}

// occupiedRanges извлекает занятые диапазоны из активных броней
func occupiedRanges(reservations []*domain.Reservation) []domain.OccupiedRange {
	ranges := make([]domain.OccupiedRange, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		ranges = append(ranges, r.OccupiedRangeOf())
	}
	return ranges
}
