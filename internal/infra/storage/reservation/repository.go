package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Condo-ReservationService/pkg/psqlbuilder"
)

// reservationColumns полный набор колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"space_id",
	"resident_id",
	"reservation_date",
	"start_time",
	"end_time",
	"tz_offset",
	"status",
	"resident_name",
	"unit_number",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями общих помещений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь.
// Если в контексте лежит активная транзакция (через dbmetrics.WithExecutor),
// использует её — так create_reservation гарантирует атомарность проверки
// доступности и вставки.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"space_id",
			"resident_id",
			"reservation_date",
			"start_time",
			"end_time",
			"tz_offset",
			"status",
			"resident_name",
			"unit_number",
			"notes",
		).
		Values(
			res.SpaceID,
			res.ResidentID,
			res.ReservationDate,
			res.StartTime,
			res.EndTime,
			res.TZOffset,
			res.Status,
			res.ResidentName,
			res.UnitNumber,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByResident получает список броней резидента
// Опционально фильтрует по статусу
func (r *Repository) GetByResident(ctx context.Context, residentID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"resident_id": residentID}).
		OrderBy("reservation_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResident - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResident - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetBySpaceWithFilter получает брони помещения с гибкой фильтрацией.
// Движок доступности читает этим методом занятость помещения за дату или
// период; по умолчанию отменённые брони не возвращаются.
func (r *Repository) GetBySpaceWithFilter(ctx context.Context, filter domain.SpaceReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"space_id": filter.SpaceID}).
		OrderBy("reservation_date ASC, start_time ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"reservation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"reservation_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.InactiveStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpaceWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpaceWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Cancel отменяет бронь с указанием причины.
// Отменить можно только активную бронь в статусе confirmed.
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error {
	if status != domain.StatusCancelledByResident && status != domain.StatusCancelledByManager {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		// Либо брони нет, либо она уже не confirmed
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrCannotCancel
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.SpaceID,
		&res.ResidentID,
		&res.ReservationDate,
		&res.StartTime,
		&res.EndTime,
		&res.TZOffset,
		&res.Status,
		&res.ResidentName,
		&res.UnitNumber,
		&res.Notes,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return reservations, nil
}
