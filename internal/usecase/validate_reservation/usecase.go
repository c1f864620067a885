package validate_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Condo-ReservationService/internal/availability"
	"github.com/m04kA/Condo-ReservationService/internal/domain"
	spaceRepo "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
)

// UseCase use case консультативной проверки кандидата на бронь.
// Вызывается UI перед отправкой формы; результат не авторитетен —
// между проверкой и коммитом занятость может измениться (TOCTOU),
// поэтому создание брони повторяет проверку в транзакции.
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

// Execute выполняет проверку кандидата
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateReservation: space=%d, resident=%d, date=%s, time=%s-%s",
		req.SpaceID, req.ResidentID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование помещения
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("ValidateReservation: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("ValidateReservation: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 4. Получаем недельное расписание
	schedule, err := uc.spaceRepo.GetWeeklySchedule(ctx, req.SpaceID)
	if err != nil {
		uc.logger.Error("ValidateReservation: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Получаем занятость на дату
	filter := domain.SpaceReservationsFilter{
		SpaceID:   req.SpaceID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	reservations, err := uc.reservationRepo.GetBySpaceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ValidateReservation: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Прогоняем кандидата через движок доступности
	candidate := &domain.ReservationRequest{
		SpaceID:    req.SpaceID,
		ResidentID: req.ResidentID,
		StartDate:  req.Date,
		StartTime:  req.StartTime,
		EndDate:    req.Date,
		EndTime:    req.EndTime,
	}

	if err := availability.Validate(schedule, occupiedRanges(reservations), candidate, now); err != nil {
		if reason, ok := rejectionReason(err); ok {
			uc.logger.Info("ValidateReservation: rejected space=%d, resident=%d: %s",
				req.SpaceID, req.ResidentID, reason)
			return &Response{Valid: false, Reason: reason}, nil
		}
		if errors.Is(err, availability.ErrDuplicateRule) || errors.Is(err, availability.ErrInvalidWindow) {
			uc.logger.Error("ValidateReservation: schedule misconfigured for space id=%d: %v", req.SpaceID, err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
		}
		uc.logger.Error("ValidateReservation: unexpected engine error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ValidateReservation: accepted space=%d, resident=%d", req.SpaceID, req.ResidentID)
	return &Response{Valid: true}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}
	if req.ResidentID <= 0 {
		return fmt.Errorf("%w: residentID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	return nil
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
