package create_reservation

import (
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	createReservation "github.com/m04kA/Condo-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SpaceID   int64   `json:"spaceId"`
	Date      string  `json:"date"`              // "2026-09-07"
	StartTime string  `json:"startTime"`         // "10:00"
	EndDate   string  `json:"endDate,omitempty"` // по умолчанию равна date
	EndTime   string  `json:"endTime"`           // "12:00"
	UTCOffset string  `json:"utcOffset"`         // "+03:00"
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	SpaceID         int64   `json:"spaceId"`
	ResidentID      int64   `json:"residentId"`
	ReservationDate string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	UTCOffset       string  `json:"utcOffset"`
	StartsAt        string  `json:"startsAt"` // "2026-09-07T10:00:00+03:00"
	EndsAt          string  `json:"endsAt"`
	Status          string  `json:"status"`
	ResidentName    *string `json:"residentName,omitempty"`
	UnitNumber      *string `json:"unitNumber,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(residentID int64) (*createReservation.Request, error) {
	// Парсим дату начала
	startDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Дата конца по умолчанию совпадает с датой начала
	endDate := startDate
	if r.EndDate != "" {
		endDate, err = time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return nil, err
		}
	}

	// Парсим времена
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		SpaceID:    r.SpaceID,
		ResidentID: residentID,
		StartDate:  startDate,
		StartTime:  startTime,
		EndDate:    endDate,
		EndTime:    endTime,
		TZOffset:   r.UTCOffset,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		SpaceID:         resp.SpaceID,
		ResidentID:      resp.ResidentID,
		ReservationDate: resp.ReservationDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		UTCOffset:       resp.TZOffset,
		StartsAt:        resp.StartsAt,
		EndsAt:          resp.EndsAt,
		Status:          resp.Status,
		ResidentName:    resp.ResidentName,
		UnitNumber:      resp.UnitNumber,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
