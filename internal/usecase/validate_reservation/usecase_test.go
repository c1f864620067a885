package validate_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	spaceStorage "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
)

var (
	futureMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	fixedNow     = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
)

type fakeSpaceRepo struct {
	space    *domain.CommonSpace
	schedule *domain.SpaceSchedule
	getErr   error
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.CommonSpace, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.space, nil
}

func (f *fakeSpaceRepo) GetWeeklySchedule(_ context.Context, _ int64) (*domain.SpaceSchedule, error) {
	return f.schedule, nil
}

type fakeReservationRepo struct {
	existing []*domain.Reservation
}

func (f *fakeReservationRepo) GetBySpaceWithFilter(_ context.Context, _ domain.SpaceReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func mondaySchedule() *domain.SpaceSchedule {
	return &domain.SpaceSchedule{
		SpaceID: 1,
		Rules: []domain.WeeklyAvailabilityRule{
			{Weekday: time.Monday, OpenTime: "08:00", CloseTime: "18:00"},
		},
	}
}

func newTestUseCase(spaces *fakeSpaceRepo, reservations *fakeReservationRepo) *UseCase {
	uc := NewUseCase(spaces, reservations, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: fixedNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		SpaceID:    1,
		ResidentID: 42,
		Date:       futureMonday,
		StartTime:  "10:00",
		EndTime:    "12:00",
	}
}

func TestExecute_Valid(t *testing.T) {
	spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}, schedule: mondaySchedule()}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Reason)
}

// Отказ валидации — это не ошибка, а ответ с кодом причины
func TestExecute_RejectionsMapToReasonCodes(t *testing.T) {
	occupied := []*domain.Reservation{
		{
			ID:              5,
			SpaceID:         1,
			ResidentID:      77,
			ReservationDate: futureMonday,
			StartTime:       "11:00",
			EndTime:         "13:00",
			Status:          domain.StatusConfirmed,
		},
	}

	tests := []struct {
		name     string
		mutate   func(req *Request)
		existing []*domain.Reservation
		reason   string
	}{
		{
			name:   "start after end",
			mutate: func(req *Request) { req.StartTime, req.EndTime = "12:00", "10:00" },
			reason: ReasonInvalidRange,
		},
		{
			name:   "closed day",
			mutate: func(req *Request) { req.Date = futureMonday.AddDate(0, 0, 1) }, // вторник без правила
			reason: ReasonDayNotAvailable,
		},
		{
			name:   "outside operating hours",
			mutate: func(req *Request) { req.StartTime, req.EndTime = "07:00", "09:00" },
			reason: ReasonOutsideOperatingHours,
		},
		{
			name:     "slot occupied",
			mutate:   func(req *Request) {},
			existing: occupied,
			reason:   ReasonSlotOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}, schedule: mondaySchedule()}
			uc := newTestUseCase(spaces, &fakeReservationRepo{existing: tt.existing})

			req := validRequest()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)

			assert.False(t, resp.Valid)
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}

// Бронь на сегодня с уже прошедшим временем начала
func TestExecute_PastTimeToday(t *testing.T) {
	spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}, schedule: mondaySchedule()}
	uc := NewUseCase(spaces, &fakeReservationRepo{}, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: futureMonday.Add(14 * time.Hour)}

	req := validRequest()
	req.StartTime, req.EndTime = "08:00", "09:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.Equal(t, ReasonPastTime, resp.Reason)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	spaces := &fakeSpaceRepo{getErr: spaceStorage.ErrSpaceNotFound}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_MisconfiguredSchedule(t *testing.T) {
	schedule := mondaySchedule()
	schedule.Rules = append(schedule.Rules, domain.WeeklyAvailabilityRule{
		Weekday: time.Monday, OpenTime: "19:00", CloseTime: "21:00",
	})

	spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}, schedule: schedule}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleMisconfigured)
}
