package models

import (
	"errors"
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену брони
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	IsManager          bool   `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// GetResidentReservationsRequest запрос на получение истории броней резидента
type GetResidentReservationsRequest struct {
	ResidentID int64   `json:"residentId"`
	UserID     int64   `json:"userId"`
	IsManager  bool    `json:"-"`
	Status     *string `json:"status,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID              int64  `json:"id"`
	SpaceID         int64  `json:"spaceId"`
	ResidentID      int64  `json:"residentId"`
	ReservationDate string `json:"reservationDate"` // "2026-09-07"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "12:00"
	TZOffset        string `json:"utcOffset"`       // "+03:00"
	StartsAt        string `json:"startsAt"`        // "2026-09-07T10:00:00+03:00"
	EndsAt          string `json:"endsAt"`
	Status          string `json:"status"`

	// Денормализованные данные
	ResidentName *string `json:"residentName,omitempty"`
	UnitNumber   *string `json:"unitNumber,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	if res == nil {
		return nil
	}

	date := res.ReservationDate.Format(domain.DateFormat)

	resp := &ReservationResponse{
		ID:                 res.ID,
		SpaceID:            res.SpaceID,
		ResidentID:         res.ResidentID,
		ReservationDate:    date,
		StartTime:          res.StartTime.String(),
		EndTime:            res.EndTime.String(),
		TZOffset:           res.TZOffset,
		Status:             string(res.Status),
		ResidentName:       res.ResidentName,
		UnitNumber:         res.UnitNumber,
		Notes:              res.Notes,
		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}

	// Привязываем wall-clock времена к сохранённому смещению
	if startsAt, err := types.NormalizeLocalDateTime(date+"T"+res.StartTime.String(), res.TZOffset); err == nil {
		resp.StartsAt = startsAt
	}
	if endsAt, err := types.NormalizeLocalDateTime(date+"T"+res.EndTime.String(), res.TZOffset); err == nil {
		resp.EndsAt = endsAt
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if res.CancelledAt != nil {
		cancelledStr := res.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, res := range reservations {
		if resResp := FromDomainReservation(res); resResp != nil {
			resp.Reservations[i] = *resResp
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	// Валидируем статус
	validStatuses := []domain.ReservationStatus{
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByResident,
		domain.StatusCancelledByManager,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
