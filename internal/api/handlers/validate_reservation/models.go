package validate_reservation

import (
	"time"

	"github.com/m04kA/Condo-ReservationService/internal/domain"
	validateReservation "github.com/m04kA/Condo-ReservationService/internal/usecase/validate_reservation"
	"github.com/m04kA/Condo-ReservationService/pkg/types"
)

// ValidateReservationRequest HTTP request model
type ValidateReservationRequest struct {
	SpaceID    int64  `json:"spaceId"`
	ResidentID int64  `json:"residentId"`
	Date       string `json:"date"`      // "2026-09-07"
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`   // "12:00"
}

// ValidateReservationResponse HTTP response model
type ValidateReservationResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateReservationRequest) ToUseCaseRequest() (*validateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &validateReservation.Request{
		SpaceID:    r.SpaceID,
		ResidentID: r.ResidentID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateReservation.Response) *ValidateReservationResponse {
	return &ValidateReservationResponse{
		Valid:  resp.Valid,
		Reason: resp.Reason,
	}
}
