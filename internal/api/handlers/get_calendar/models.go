package get_calendar

import (
	getCalendar "github.com/m04kA/Condo-ReservationService/internal/usecase/get_calendar_availability"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	SpaceID int64         `json:"spaceId"`
	Year    int           `json:"year"`
	Month   int           `json:"month"`
	Days    []DayResponse `json:"days"`
}

// DayResponse доступность одного календарного дня
type DayResponse struct {
	Date     string `json:"date"` // "2026-09-07"
	Bookable bool   `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayResponse{
			Date:     day.Date,
			Bookable: day.Bookable,
		}
	}

	return &CalendarResponse{
		SpaceID: resp.SpaceID,
		Year:    resp.Year,
		Month:   resp.Month,
		Days:    days,
	}
}
