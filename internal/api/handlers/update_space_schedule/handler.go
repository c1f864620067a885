package update_space_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Condo-ReservationService/internal/api/handlers"
	"github.com/m04kA/Condo-ReservationService/internal/api/middleware"
	"github.com/m04kA/Condo-ReservationService/internal/service/schedule"
)

const (
	msgInvalidSpaceID     = "некорректный ID помещения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSpaceNotFound      = "помещение не найдено"
	msgForbidden          = "доступ запрещен"
	msgDuplicateWeekday   = "на один день недели допустимо только одно правило"
	msgInvalidSchedule    = "некорректное расписание"
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

// Handle PUT /api/v1/spaces/{spaceId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем spaceId из URL
	vars := mux.Vars(r)
	spaceIDStr := vars["spaceId"]

	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /spaces/{id}/schedule - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /spaces/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель сервиса
	serviceReq := req.ToServiceRequest(userID, middleware.IsManager(r.Context()))

	// Обновляем расписание (сервис сам проверит права доступа)
	result, err := h.service.UpdateSpaceSchedule(r.Context(), spaceID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSpaceNotFound):
			h.logger.Warn("PUT /spaces/{id}/schedule - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /spaces/{id}/schedule - Access denied: space_id=%d, user_id=%d", spaceID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrDuplicateWeekday):
			h.logger.Warn("PUT /spaces/{id}/schedule - Duplicate weekday rule: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgDuplicateWeekday)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /spaces/{id}/schedule - Invalid schedule: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /spaces/{id}/schedule - Failed to update schedule: space_id=%d, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /spaces/{id}/schedule - Schedule updated successfully: space_id=%d, user_id=%d",
		spaceID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
