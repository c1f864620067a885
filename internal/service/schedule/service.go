package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	spaceRepo "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
	"github.com/m04kA/Condo-ReservationService/internal/service/schedule/models"
)

// Service сервис для работы с недельными расписаниями помещений
type Service struct {
	spaceRepo SpaceRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	spaceRepo SpaceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetSpaceSchedule получает недельное расписание помещения
// Публичный метод - доступен всем
func (s *Service) GetSpaceSchedule(ctx context.Context, spaceID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSpaceSchedule: fetching schedule for space=%d", spaceID)

	if _, err := s.spaceRepo.GetByID(ctx, spaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetSpaceSchedule: space id=%d not found", spaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetSpaceSchedule: failed to get space id=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: GetSpaceSchedule - failed to get space: %v", ErrInternal, err)
	}

	schedule, err := s.spaceRepo.GetWeeklySchedule(ctx, spaceID)
	if err != nil {
		s.logger.Error("GetSpaceSchedule: repository error for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: GetSpaceSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSpaceSchedule: successfully fetched schedule for space=%d, %d rules, %d blocked days",
		spaceID, len(schedule.Rules), len(schedule.BlockedWeekdays))
	return models.FromDomainSchedule(schedule), nil
}

// UpdateSpaceSchedule заменяет недельное расписание помещения целиком
// Доступно только менеджерам кондоминиума
// Правила и заблокированные дни заменяются атомарно в одной транзакции
func (s *Service) UpdateSpaceSchedule(ctx context.Context, spaceID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSpaceSchedule: updating schedule for space=%d by user=%d, %d rules",
		spaceID, req.UserID, len(req.Rules))

	// 1. Проверяем права доступа (только менеджер кондоминиума)
	if !req.IsManager {
		s.logger.Warn("UpdateSpaceSchedule: user=%d is not a manager", req.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Конвертируем request в domain модель
	schedule, err := req.ToDomainSchedule(spaceID)
	if err != nil {
		s.logger.Warn("UpdateSpaceSchedule: invalid schedule for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Валидируем расписание
	if err := s.validateSchedule(schedule); err != nil {
		s.logger.Warn("UpdateSpaceSchedule: validation failed for space=%d: %v", spaceID, err)
		return nil, err
	}

	// 4. Проверяем существование помещения
	if _, err := s.spaceRepo.GetByID(ctx, spaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("UpdateSpaceSchedule: space id=%d not found", spaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("UpdateSpaceSchedule: failed to get space id=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: UpdateSpaceSchedule - failed to get space: %v", ErrInternal, err)
	}

	// 5. Заменяем правила и заблокированные дни в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.spaceRepo.ReplaceWeeklySchedule(txCtx, schedule); err != nil {
			s.logger.Error("UpdateSpaceSchedule: repository error for space=%d: %v", spaceID, err)
			return fmt.Errorf("%w: UpdateSpaceSchedule - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateSpaceSchedule: successfully updated schedule for space=%d", spaceID)
	return models.FromDomainSchedule(schedule), nil
}

// validateSchedule валидирует недельное расписание.
// Один день недели - максимум одно правило, открытие строго раньше закрытия.
func (s *Service) validateSchedule(schedule *domain.SpaceSchedule) error {
	seen := make(map[int]bool, len(schedule.Rules))

	for _, rule := range schedule.Rules {
		if seen[int(rule.Weekday)] {
			return fmt.Errorf("%w: weekday %d has more than one rule", ErrDuplicateWeekday, int(rule.Weekday))
		}
		seen[int(rule.Weekday)] = true

		if !rule.OpenTime.IsBefore(rule.CloseTime) {
			return fmt.Errorf("%w: openTime %s must be before closeTime %s",
				ErrInvalidInput, rule.OpenTime, rule.CloseTime)
		}
	}

	return nil
}
