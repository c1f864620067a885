package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Condo-ReservationService/internal/availability"
	"github.com/m04kA/Condo-ReservationService/internal/domain"
	spaceRepo "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
	residentClient "github.com/m04kA/Condo-ReservationService/internal/integrations/residentservice"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// UseCase use case для создания брони помещения
type UseCase struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	residentClient  ResidentServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	residentClient ResidentServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		residentClient:  residentClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Валидация кандидата повторяется внутри сериализуемой транзакции:
// консультативная проверка на UI ни от чего не защищает, между ней и
// коммитом другой резидент мог занять пересекающийся диапазон.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: space=%d, resident=%d, date=%s, time=%s-%s",
		req.SpaceID, req.ResidentID, req.StartDate.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем резидента и проверяем активность учетной записи
	resident, err := uc.residentClient.GetActiveResident(ctx, req.ResidentID)
	if err != nil {
		if errors.Is(err, residentClient.ErrResidentNotFound) {
			uc.logger.Warn("CreateReservation: resident id=%d not found", req.ResidentID)
			return nil, ErrResidentNotFound
		}
		if errors.Is(err, residentClient.ErrResidentInactive) {
			uc.logger.Warn("CreateReservation: resident id=%d is inactive", req.ResidentID)
			return nil, ErrResidentInactive
		}
		uc.logger.Error("CreateReservation: failed to get resident id=%d: %v", req.ResidentID, err)
		return nil, fmt.Errorf("%w: failed to get resident: %v", ErrInternal, err)
	}

	// 4. Проверяем существование помещения
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CreateReservation: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 5. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем недельное расписание
		schedule, err := uc.spaceRepo.GetWeeklySchedule(txCtx, req.SpaceID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 5.2. Получаем все активные брони на эту дату
		filter := domain.SpaceReservationsFilter{
			SpaceID:   req.SpaceID,
			StartDate: &req.StartDate,
			EndDate:   &req.StartDate,
		}

		reservations, err := uc.reservationRepo.GetBySpaceWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.3. Авторитетная проверка кандидата движком доступности
		candidate := &domain.ReservationRequest{
			SpaceID:    req.SpaceID,
			ResidentID: req.ResidentID,
			StartDate:  req.StartDate,
			StartTime:  req.StartTime,
			EndDate:    req.EndDate,
			EndTime:    req.EndTime,
			TZOffset:   req.TZOffset,
			Notes:      req.Notes,
		}

		if err := availability.Validate(schedule, occupiedRanges(reservations), candidate, now); err != nil {
			if errors.Is(err, availability.ErrDuplicateRule) || errors.Is(err, availability.ErrInvalidWindow) {
				uc.logger.Error("CreateReservation: schedule misconfigured for space id=%d: %v", req.SpaceID, err)
				return fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
			}
			uc.logger.Warn("CreateReservation: candidate rejected: %v", err)
			return err
		}

		// 5.4. Создаем бронь с денормализацией данных резидента
		reservation := &domain.Reservation{
			SpaceID:         req.SpaceID,
			ResidentID:      req.ResidentID,
			ReservationDate: req.StartDate,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			TZOffset:        req.TZOffset,
			Status:          domain.StatusConfirmed,
			// Денормализация данных резидента
			ResidentName: &resident.Name,
			UnitNumber:   &resident.UnitNumber,
			// Заметки
			Notes: req.Notes,
		}

		// 5.5. Сохраняем бронь
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return toResponse(result)
}

// toResponse конвертирует доменную бронь в response с привязанными моментами
func toResponse(r *domain.Reservation) (*Response, error) {
	date := r.ReservationDate.Format(domain.DateFormat)

	startsAt, err := types.NormalizeLocalDateTime(date+"T"+r.StartTime.String(), r.TZOffset)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to normalize start instant: %v", ErrInternal, err)
	}

	endsAt, err := types.NormalizeLocalDateTime(date+"T"+r.EndTime.String(), r.TZOffset)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to normalize end instant: %v", ErrInternal, err)
	}

	return &Response{
		ID:              r.ID,
		SpaceID:         r.SpaceID,
		ResidentID:      r.ResidentID,
		ReservationDate: r.ReservationDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		TZOffset:        r.TZOffset,
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		Status:          string(r.Status),
		ResidentName:    r.ResidentName,
		UnitNumber:      r.UnitNumber,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
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
