package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	spaceStorage "github.com/m04kA/Condo-ReservationService/internal/infra/storage/space"
	"github.com/m04kA/Condo-ReservationService/internal/service/schedule/models"
)

type fakeSpaceRepo struct {
	space    *domain.CommonSpace
	schedule *domain.SpaceSchedule
	getErr   error
	replaced *domain.SpaceSchedule
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

func (f *fakeSpaceRepo) ReplaceWeeklySchedule(_ context.Context, schedule *domain.SpaceSchedule) error {
	f.replaced = schedule
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func managerRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:    1,
		IsManager: true,
		Rules: []models.WeekdayRule{
			{Weekday: 1, OpenTime: "08:00", CloseTime: "18:00"},
			{Weekday: 6, OpenTime: "10:00", CloseTime: "22:00"},
		},
		BlockedWeekdays: []int{0},
	}
}

func TestUpdateSpaceSchedule_Success(t *testing.T) {
	repo := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}}
	svc := NewService(repo, &fakeTxManager{}, &nopLogger{})

	resp, err := svc.UpdateSpaceSchedule(context.Background(), 1, managerRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.replaced)
	assert.Len(t, repo.replaced.Rules, 2)
	assert.Equal(t, []int{0}, resp.BlockedWeekdays)
	assert.Equal(t, int64(1), resp.SpaceID)
}

// Два правила на один день недели — ошибка конфигурации, замена не выполняется
func TestUpdateSpaceSchedule_DuplicateWeekday(t *testing.T) {
	repo := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}}
	svc := NewService(repo, &fakeTxManager{}, &nopLogger{})

	req := managerRequest()
	req.Rules = append(req.Rules, models.WeekdayRule{Weekday: 1, OpenTime: "19:00", CloseTime: "21:00"})

	_, err := svc.UpdateSpaceSchedule(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrDuplicateWeekday)
	assert.Nil(t, repo.replaced)
}

func TestUpdateSpaceSchedule_OpenAfterClose(t *testing.T) {
	repo := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}}
	svc := NewService(repo, &fakeTxManager{}, &nopLogger{})

	req := managerRequest()
	req.Rules = []models.WeekdayRule{{Weekday: 1, OpenTime: "18:00", CloseTime: "08:00"}}

	_, err := svc.UpdateSpaceSchedule(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.replaced)
}

func TestUpdateSpaceSchedule_NotManager(t *testing.T) {
	repo := &fakeSpaceRepo{space: &domain.CommonSpace{ID: 1}}
	svc := NewService(repo, &fakeTxManager{}, &nopLogger{})

	req := managerRequest()
	req.IsManager = false

	_, err := svc.UpdateSpaceSchedule(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateSpaceSchedule_SpaceNotFound(t *testing.T) {
	repo := &fakeSpaceRepo{getErr: spaceStorage.ErrSpaceNotFound}
	svc := NewService(repo, &fakeTxManager{}, &nopLogger{})

	_, err := svc.UpdateSpaceSchedule(context.Background(), 1, managerRequest())
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestGetSpaceSchedule_Success(t *testing.T) {
	repo := &fakeSpaceRepo{
		space: &domain.CommonSpace{ID: 1},
		schedule: &domain.SpaceSchedule{
			SpaceID: 1,
			Rules: []domain.WeeklyAvailabilityRule{
				{Weekday: 1, OpenTime: "08:00", CloseTime: "18:00"},
			},
		},
	}
	svc := NewService(repo, &fakeTxManager{}, &nopLogger{})

	resp, err := svc.GetSpaceSchedule(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Rules, 1)
	assert.Equal(t, 1, resp.Rules[0].Weekday)
	assert.Equal(t, "08:00", resp.Rules[0].OpenTime)
	assert.Equal(t, "18:00", resp.Rules[0].CloseTime)
}
