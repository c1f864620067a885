package domain

import (
	"time"

	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed           ReservationStatus = "confirmed"
	StatusCompleted           ReservationStatus = "completed"
	StatusCancelledByResident ReservationStatus = "cancelled_by_resident"
	StatusCancelledByManager  ReservationStatus = "cancelled_by_manager"
)

// Reservation represents a confirmed booking of a common space.
// Бронь всегда начинается и заканчивается в один календарный день.
type Reservation struct {
	ID         int64
	SpaceID    int64
	ResidentID int64

	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString

	// TZOffset смещение UTC кондоминиума на момент создания ("±HH:MM").
	// Хранится, чтобы восстановить instant без переинтерпретации wall-clock времени.
	TZOffset string

	Status ReservationStatus

	// Денормализованные данные резидента для истории
	ResidentName *string
	UnitNumber   *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time range
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByResident &&
		r.Status != StatusCancelledByManager
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByResident || r.Status == StatusCancelledByManager
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// OccupiedRange занятый диапазон времени в конкретную дату.
// Производное read-only представление активной брони для движка доступности.
type OccupiedRange struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// OccupiedRangeOf returns the occupied range of an active reservation
func (r *Reservation) OccupiedRangeOf() OccupiedRange {
	return OccupiedRange{
		Date:      r.ReservationDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// ReservationRequest кандидат на бронь. Создается вызывающим, валидируется
// движком доступности один раз, никогда не мутируется.
type ReservationRequest struct {
	SpaceID    int64
	ResidentID int64

	StartDate time.Time
	StartTime types.TimeString
	EndDate   time.Time
	EndTime   types.TimeString

	TZOffset string
	Notes    *string
}

// SpaceReservationsFilter фильтр для получения броней помещения
type SpaceReservationsFilter struct {
	SpaceID         int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые брони
}
