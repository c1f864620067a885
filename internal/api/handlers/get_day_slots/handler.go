package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Condo-ReservationService/internal/api/handlers"
	"github.com/m04kA/Condo-ReservationService/internal/domain"
	getDaySlots "github.com/m04kA/Condo-ReservationService/internal/usecase/get_day_slots"
)

const (
	msgInvalidSpaceID   = "некорректный ID помещения"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSpaceNotFound    = "помещение не найдено"
	msgBadSchedule      = "расписание помещения настроено некорректно"
	msgInvalidInputData = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем spaceId из URL
	spaceIDStr := vars["spaceId"]
	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/slots - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /spaces/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{
		SpaceID: spaceID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/slots - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/slots - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInputData)

		case errors.Is(err, getDaySlots.ErrScheduleMisconfigured):
			h.logger.Error("GET /spaces/{id}/slots - Schedule misconfigured: space_id=%d, error=%v", spaceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBadSchedule)

		default:
			h.logger.Error("GET /spaces/{id}/slots - Failed to get slots: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{id}/slots - Slots retrieved successfully: space_id=%d, date=%s, slots=%d",
		spaceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
