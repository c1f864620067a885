package get_resident_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Condo-ReservationService/internal/api/handlers"
	"github.com/m04kA/Condo-ReservationService/internal/api/middleware"
	"github.com/m04kA/Condo-ReservationService/internal/service/reservations"
	"github.com/m04kA/Condo-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidResidentID = "некорректный ID резидента"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgInvalidStatus     = "некорректный статус брони"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/residents/{residentId}/reservations
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем residentId из URL
	vars := mux.Vars(r)
	residentIDStr := vars["residentId"]

	residentID, err := strconv.ParseInt(residentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /residents/{id}/reservations - Invalid resident ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResidentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /residents/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем опциональный status из query параметров
	var status *string
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status = &statusStr
	}

	req := &models.GetResidentReservationsRequest{
		ResidentID: residentID,
		UserID:     userID,
		IsManager:  middleware.IsManager(r.Context()),
		Status:     status,
	}

	// Получаем историю броней (сервис сам проверит права доступа)
	result, err := h.service.GetResidentReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /residents/{id}/reservations - Access denied: resident_id=%d, user_id=%d",
				residentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /residents/{id}/reservations - Invalid status: resident_id=%d", residentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /residents/{id}/reservations - Failed to get reservations: resident_id=%d, error=%v",
				residentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /residents/{id}/reservations - Reservations retrieved successfully: resident_id=%d, count=%d",
		residentID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
