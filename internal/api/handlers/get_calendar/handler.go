package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Condo-ReservationService/internal/api/handlers"
	getCalendar "github.com/m04kA/Condo-ReservationService/internal/usecase/get_calendar_availability"
)

const (
	msgInvalidSpaceID   = "некорректный ID помещения"
	msgMissingYear      = "год обязателен"
	msgInvalidYear      = "некорректный год"
	msgMissingMonth     = "месяц обязателен"
	msgInvalidMonth     = "некорректный месяц, ожидается 1-12"
	msgSpaceNotFound    = "помещение не найдено"
	msgBadSchedule      = "расписание помещения настроено некорректно"
	msgInvalidInputData = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/calendar
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем spaceId из URL
	spaceIDStr := vars["spaceId"]
	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/calendar - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /spaces/{id}/calendar - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/calendar - Invalid year %q: %v", yearStr, err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /spaces/{id}/calendar - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/calendar - Invalid month %q: %v", monthStr, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		SpaceID: spaceID,
		Year:    year,
		Month:   month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/calendar - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/calendar - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInputData)

		case errors.Is(err, getCalendar.ErrScheduleMisconfigured):
			h.logger.Error("GET /spaces/{id}/calendar - Schedule misconfigured: space_id=%d, error=%v", spaceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBadSchedule)

		default:
			h.logger.Error("GET /spaces/{id}/calendar - Failed to get calendar: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{id}/calendar - Calendar retrieved successfully: space_id=%d, %d-%02d",
		spaceID, year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
