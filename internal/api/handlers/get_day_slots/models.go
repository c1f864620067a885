package get_day_slots

import (
	"github.com/m04kA/Condo-ReservationService/internal/domain"
	getDaySlots "github.com/m04kA/Condo-ReservationService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	SpaceID int64          `json:"spaceId"`
	Date    string         `json:"date"` // "2026-09-07"
	Open    bool           `json:"open"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse временная точка рабочего окна дня
type SlotResponse struct {
	Time     string `json:"time"` // "10:30"
	Occupied bool   `json:"occupied"`
	Past     bool   `json:"past"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:     slot.Time.String(),
			Occupied: slot.Occupied,
			Past:     slot.Past,
		}
	}

	return &DaySlotsResponse{
		SpaceID: resp.SpaceID,
		Date:    resp.Date.Format(domain.DateFormat),
		Open:    resp.Open,
		Slots:   slots,
	}
}
