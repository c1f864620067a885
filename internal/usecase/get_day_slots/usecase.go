package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Condo-ReservationService/internal/availability"
	"github.com/m04kA/Condo-ReservationService/internal/domain"
	spaceRepo "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
)

// UseCase use case для получения слотов дня (пикер времени в UI)
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

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: space=%d, date=%s", req.SpaceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.SpaceID <= 0 {
		return nil, fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование помещения
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetDaySlots: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 4. Получаем недельное расписание
	schedule, err := uc.spaceRepo.GetWeeklySchedule(ctx, req.SpaceID)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get schedule for space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Получаем занятость на дату.
	// Занятость перечитывается на каждый запрос, кеширования нет:
	// устаревший снимок хуже лишнего запроса.
	filter := domain.SpaceReservationsFilter{
		SpaceID:   req.SpaceID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	reservations, err := uc.reservationRepo.GetBySpaceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты
	slots, err := availability.Slots(schedule, occupiedRanges(reservations), req.Date, now)
	if err != nil {
		if errors.Is(err, availability.ErrDuplicateRule) || errors.Is(err, availability.ErrInvalidWindow) {
			uc.logger.Error("GetDaySlots: schedule misconfigured for space id=%d: %v", req.SpaceID, err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
		}
		uc.logger.Error("GetDaySlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetDaySlots: generated %d slots for space=%d, date=%s",
		len(slots), req.SpaceID, req.Date.Format(domain.DateFormat))

	return &Response{
		SpaceID: req.SpaceID,
		Date:    req.Date,
		Open:    len(slots) > 0,
		Slots:   toSlots(slots),
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

func toSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			Time:     s.Time,
			Occupied: s.Occupied,
			Past:     s.Past,
		}
	}
	return result
}
