package validate_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Condo-ReservationService/internal/api/handlers"
	validateReservation "github.com/m04kA/Condo-ReservationService/internal/usecase/validate_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSpaceNotFound      = "помещение не найдено"
	msgBadSchedule        = "расписание помещения настроено некорректно"
	msgInvalidInputData   = "некорректные данные запроса"
)

type Handler struct {
	useCase ValidateReservationUseCase
	logger  Logger
}

func NewHandler(useCase ValidateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/validate
// Консультативная проверка: отказ валидации - это 200 с valid=false,
// а не ошибка HTTP. Ошибками отвечаем только на проблемы самого запроса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateReservation.ErrSpaceNotFound):
			h.logger.Warn("POST /reservations/validate - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, validateReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/validate - Invalid input: space_id=%d, error=%v", req.SpaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInputData)

		case errors.Is(err, validateReservation.ErrScheduleMisconfigured):
			h.logger.Error("POST /reservations/validate - Schedule misconfigured: space_id=%d, error=%v",
				req.SpaceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBadSchedule)

		default:
			h.logger.Error("POST /reservations/validate - Failed to validate: space_id=%d, error=%v",
				req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/validate - Validation completed: space_id=%d, valid=%t, reason=%s",
		req.SpaceID, result.Valid, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
