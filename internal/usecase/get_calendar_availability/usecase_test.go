package get_calendar_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	spaceStorage "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
)

var fixedNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

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

func newTestUseCase(spaces *fakeSpaceRepo, reservations *fakeReservationRepo) *UseCase {
	uc := NewUseCase(spaces, reservations, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: fixedNow}
	return uc
}

// Расписание только на понедельник: в сентябре 2026 бронируемы ровно
// понедельники (7, 14, 21, 28), остальные дни закрыты
func TestExecute_MondaysOnly(t *testing.T) {
	spaces := &fakeSpaceRepo{
		space: &domain.CommonSpace{ID: 1},
		schedule: &domain.SpaceSchedule{
			SpaceID: 1,
			Rules: []domain.WeeklyAvailabilityRule{
				{Weekday: time.Monday, OpenTime: "08:00", CloseTime: "18:00"},
			},
		},
	}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Year: 2026, Month: 9})
	require.NoError(t, err)

	require.Len(t, resp.Days, 30)

	bookable := map[string]bool{}
	for _, day := range resp.Days {
		bookable[day.Date] = day.Bookable
	}

	assert.True(t, bookable["2026-09-07"])
	assert.True(t, bookable["2026-09-14"])
	assert.True(t, bookable["2026-09-21"])
	assert.True(t, bookable["2026-09-28"])
	assert.False(t, bookable["2026-09-06"]) // воскресенье
	assert.False(t, bookable["2026-09-08"]) // вторник
}

// Заблокированный день недели закрыт, даже если правило существует
func TestExecute_BlockedWeekday(t *testing.T) {
	spaces := &fakeSpaceRepo{
		space: &domain.CommonSpace{ID: 1},
		schedule: &domain.SpaceSchedule{
			SpaceID: 1,
			Rules: []domain.WeeklyAvailabilityRule{
				{Weekday: time.Monday, OpenTime: "08:00", CloseTime: "18:00"},
			},
			BlockedWeekdays: []time.Weekday{time.Monday},
		},
	}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Year: 2026, Month: 9})
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.False(t, day.Bookable, "day %s must be closed", day.Date)
	}
}

func TestExecute_InvalidMonth(t *testing.T) {
	spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Year: 2026, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	spaces := &fakeSpaceRepo{getErr: spaceStorage.ErrSpaceNotFound}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Year: 2026, Month: 9})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}
