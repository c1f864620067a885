package get_space_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Condo-ReservationService/internal/api/handlers"
	"github.com/m04kA/Condo-ReservationService/internal/service/schedule"
)

const (
	msgInvalidSpaceID = "некорректный ID помещения"
	msgSpaceNotFound  = "помещение не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем spaceId из URL
	vars := mux.Vars(r)
	spaceIDStr := vars["spaceId"]

	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/schedule - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	// Получаем расписание
	result, err := h.service.GetSpaceSchedule(r.Context(), spaceID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/schedule - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		default:
			h.logger.Error("GET /spaces/{id}/schedule - Failed to get schedule: space_id=%d, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{id}/schedule - Schedule retrieved successfully: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
