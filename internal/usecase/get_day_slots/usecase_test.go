package get_day_slots

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

// Окно 08:00-18:00 с шагом 30 минут дает 21 точку, границы включительно
func TestExecute_OpenDay(t *testing.T) {
	spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}, schedule: mondaySchedule()}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Date: futureMonday})
	require.NoError(t, err)

	assert.True(t, resp.Open)
	require.Len(t, resp.Slots, 21)
	assert.Equal(t, "08:00", resp.Slots[0].Time.String())
	assert.Equal(t, "18:00", resp.Slots[20].Time.String())

	for _, slot := range resp.Slots {
		assert.False(t, slot.Occupied)
		assert.False(t, slot.Past)
	}
}

func TestExecute_ClosedDay(t *testing.T) {
	spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}, schedule: mondaySchedule()}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	// Воскресенье: правила нет
	sunday := futureMonday.AddDate(0, 0, -1)

	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Date: sunday})
	require.NoError(t, err)

	assert.False(t, resp.Open)
	assert.Empty(t, resp.Slots)
}

// Бронь 10:00-12:00 занимает точки 10:00..12:00 включительно
func TestExecute_OccupiedMarking(t *testing.T) {
	spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}, schedule: mondaySchedule()}
	reservations := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{
				ID:              5,
				SpaceID:         1,
				ResidentID:      77,
				ReservationDate: futureMonday,
				StartTime:       "10:00",
				EndTime:         "12:00",
				Status:          domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(spaces, reservations)

	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Date: futureMonday})
	require.NoError(t, err)

	occupied := map[string]bool{}
	for _, slot := range resp.Slots {
		occupied[slot.Time.String()] = slot.Occupied
	}

	assert.False(t, occupied["09:30"])
	assert.True(t, occupied["10:00"])
	assert.True(t, occupied["11:00"])
	assert.True(t, occupied["12:00"])
	assert.False(t, occupied["12:30"])
}

func TestExecute_SpaceNotFound(t *testing.T) {
	spaces := &fakeSpaceRepo{getErr: spaceStorage.ErrSpaceNotFound}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Date: futureMonday})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	spaces := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}, schedule: mondaySchedule()}
	uc := newTestUseCase(spaces, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{SpaceID: 0, Date: futureMonday})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
