package space

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Condo-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения помещений и их недельных расписаний.
// Каталог помещений принадлежит основному бэкенду платформы; здесь он
// только читается, пишется лишь расписание.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория помещений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает помещение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CommonSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"condo_id",
		"name",
		"type",
		"created_at",
		"updated_at",
	).
		From("common_spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var space domain.CommonSpace
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&space.CondoID,
		&space.Name,
		&space.Type,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

// GetWeeklySchedule получает недельное расписание помещения:
// правила по дням недели плюс заблокированные дни
func (r *Repository) GetWeeklySchedule(ctx context.Context, spaceID int64) (*domain.SpaceSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"open_time",
		"close_time",
	).
		From("space_weekly_rules").
		Where(squirrel.Eq{"space_id": spaceID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build rules query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute rules query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := &domain.SpaceSchedule{SpaceID: spaceID}

	for rows.Next() {
		var rule domain.WeeklyAvailabilityRule
		var weekday int
		if err := rows.Scan(&weekday, &rule.OpenTime, &rule.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan rule: %v", ErrScanRow, err)
		}
		rule.Weekday = time.Weekday(weekday)
		schedule.Rules = append(schedule.Rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rules iteration: %v", ErrScanRow, err)
	}

	blocked, err := r.getBlockedWeekdays(ctx, executor, spaceID)
	if err != nil {
		return nil, err
	}
	schedule.BlockedWeekdays = blocked

	return schedule, nil
}

func (r *Repository) getBlockedWeekdays(ctx context.Context, executor DBExecutor, spaceID int64) ([]time.Weekday, error) {
	query, args, err := psqlbuilder.Select("weekday").
		From("space_blocked_weekdays").
		Where(squirrel.Eq{"space_id": spaceID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBlockedWeekdays - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getBlockedWeekdays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var blocked []time.Weekday
	for rows.Next() {
		var weekday int
		if err := rows.Scan(&weekday); err != nil {
			return nil, fmt.Errorf("%w: getBlockedWeekdays - scan: %v", ErrScanRow, err)
		}
		blocked = append(blocked, time.Weekday(weekday))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getBlockedWeekdays - iteration: %v", ErrScanRow, err)
	}

	return blocked, nil
}

// ReplaceWeeklySchedule полностью заменяет недельное расписание помещения.
// Вызывается внутри транзакции (tx в контексте), чтобы удаление и вставка
// были атомарны.
func (r *Repository) ReplaceWeeklySchedule(ctx context.Context, schedule *domain.SpaceSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteRules, args, err := psqlbuilder.Delete("space_weekly_rules").
		Where(squirrel.Eq{"space_id": schedule.SpaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklySchedule - build delete rules: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteRules, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklySchedule - delete rules: %v", ErrExecQuery, err)
	}

	deleteBlocked, args, err := psqlbuilder.Delete("space_blocked_weekdays").
		Where(squirrel.Eq{"space_id": schedule.SpaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklySchedule - build delete blocked: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteBlocked, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklySchedule - delete blocked: %v", ErrExecQuery, err)
	}

	if len(schedule.Rules) > 0 {
		insertRules := psqlbuilder.Insert("space_weekly_rules").
			Columns("space_id", "weekday", "open_time", "close_time")
		for _, rule := range schedule.Rules {
			insertRules = insertRules.Values(schedule.SpaceID, int(rule.Weekday), rule.OpenTime, rule.CloseTime)
		}

		query, args, err := insertRules.ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceWeeklySchedule - build insert rules: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceWeeklySchedule - insert rules: %v", ErrExecQuery, err)
		}
	}

	if len(schedule.BlockedWeekdays) > 0 {
		insertBlocked := psqlbuilder.Insert("space_blocked_weekdays").
			Columns("space_id", "weekday")
		for _, weekday := range schedule.BlockedWeekdays {
			insertBlocked = insertBlocked.Values(schedule.SpaceID, int(weekday))
		}

		query, args, err := insertBlocked.ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceWeeklySchedule - build insert blocked: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceWeeklySchedule - insert blocked: %v", ErrExecQuery, err)
		}
	}

	return nil
}
