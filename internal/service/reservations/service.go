package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/Condo-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/Condo-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронями помещений
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
// Проверяет права доступа - резидент может видеть только свою бронь,
// менеджер кондоминиума видит любую
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isManager bool) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if reservation.ResidentID != userID && !isManager {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetResidentReservations получает историю броней резидента
// Опционально фильтрует по статусу
// Резидент видит только свою историю, менеджер - историю любого резидента
func (s *Service) GetResidentReservations(ctx context.Context, req *models.GetResidentReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetResidentReservations: fetching reservations for resident=%d, status=%v",
		req.ResidentID, req.Status)

	// Проверяем права доступа
	if req.ResidentID != req.UserID && !req.IsManager {
		s.logger.Warn("GetResidentReservations: access denied for user=%d to resident=%d history",
			req.UserID, req.ResidentID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetResidentReservations: invalid status=%s for resident=%d", *req.Status, req.ResidentID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByResident(ctx, req.ResidentID, domainStatus)
	if err != nil {
		s.logger.Error("GetResidentReservations: repository error for resident=%d: %v", req.ResidentID, err)
		return nil, fmt.Errorf("%w: GetResidentReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetResidentReservations: successfully fetched %d reservations for resident=%d",
		len(reservations), req.ResidentID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронь
// Резидент может отменить только свою бронь (cancelled_by_resident)
// Менеджер кондоминиума может отменить любую бронь (cancelled_by_manager)
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	// Получаем бронь
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронь
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.ReservationStatus

	if reservation.ResidentID == req.UserID {
		cancelStatus = domain.StatusCancelledByResident
	} else {
		if !req.IsManager {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d",
				req.UserID, reservationID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByManager
	}

	// Отменяем бронь
	if err := s.reservationRepo.Cancel(ctx, reservationID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		if errors.Is(err, reservationRepo.ErrCannotCancel) {
			s.logger.Warn("Cancel: reservation id=%d already cancelled or completed", reservationID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status=%s", reservationID, cancelStatus)
	return nil
}
