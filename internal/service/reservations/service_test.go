package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	reservationStorage "github.com/m04kA/Condo-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/Condo-ReservationService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	reservation     *domain.Reservation
	getErr          error
	cancelErr       error
	cancelledStatus domain.ReservationStatus
	cancelledReason string
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.reservation, nil
}

func (f *fakeReservationRepo) GetByResident(_ context.Context, _ int64, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.reservation}, nil
}

func (f *fakeReservationRepo) GetBySpaceWithFilter(_ context.Context, _ domain.SpaceReservationsFilter) ([]*domain.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ int64, status domain.ReservationStatus, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func confirmedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              101,
		SpaceID:         1,
		ResidentID:      42,
		ReservationDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "12:00",
		TZOffset:        "+03:00",
		Status:          domain.StatusConfirmed,
	}
}

// Резидент отменяет свою бронь: статус cancelled_by_resident
func TestCancel_ByOwner(t *testing.T) {
	repo := &fakeReservationRepo{reservation: confirmedReservation()}
	svc := NewService(repo, &nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelReservationRequest{
		UserID:             42,
		CancellationReason: "планы изменились",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByResident, repo.cancelledStatus)
	assert.Equal(t, "планы изменились", repo.cancelledReason)
}

// Менеджер отменяет чужую бронь: статус cancelled_by_manager
func TestCancel_ByManager(t *testing.T) {
	repo := &fakeReservationRepo{reservation: confirmedReservation()}
	svc := NewService(repo, &nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelReservationRequest{
		UserID:             999,
		IsManager:          true,
		CancellationReason: "ремонт помещения",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByManager, repo.cancelledStatus)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &fakeReservationRepo{reservation: confirmedReservation()}
	svc := NewService(repo, &nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelReservationRequest{UserID: 999})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelledStatus)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	reservation := confirmedReservation()
	reservation.Status = domain.StatusCancelledByResident

	repo := &fakeReservationRepo{reservation: reservation}
	svc := NewService(repo, &nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelReservationRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{getErr: reservationStorage.ErrReservationNotFound}
	svc := NewService(repo, &nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelReservationRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByID_OwnerAndManagerAccess(t *testing.T) {
	repo := &fakeReservationRepo{reservation: confirmedReservation()}
	svc := NewService(repo, &nopLogger{})

	// Владелец видит свою бронь
	resp, err := svc.GetByID(context.Background(), 101, 42, false)
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)

	// Менеджер видит чужую
	_, err = svc.GetByID(context.Background(), 101, 999, true)
	require.NoError(t, err)

	// Посторонний резидент - нет
	_, err = svc.GetByID(context.Background(), 101, 999, false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetResidentReservations_InvalidStatus(t *testing.T) {
	repo := &fakeReservationRepo{reservation: confirmedReservation()}
	svc := NewService(repo, &nopLogger{})

	badStatus := "pending"
	_, err := svc.GetResidentReservations(context.Background(), &models.GetResidentReservationsRequest{
		ResidentID: 42,
		UserID:     42,
		Status:     &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
