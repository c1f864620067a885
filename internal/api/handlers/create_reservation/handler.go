package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Condo-ReservationService/internal/api/handlers"
	"github.com/m04kA/Condo-ReservationService/internal/api/middleware"
	"github.com/m04kA/Condo-ReservationService/internal/availability"
	createReservation "github.com/m04kA/Condo-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgSpaceNotFound        = "помещение не найдено"
	msgResidentNotFound     = "резидент не найден"
	msgResidentInactive     = "учетная запись резидента деактивирована"
	msgInvalidRange         = "время начала должно быть раньше времени конца"
	msgMultiDayNotSupported = "бронь на несколько дней не поддерживается"
	msgDayNotAvailable      = "помещение закрыто в выбранный день"
	msgOutsideHours         = "выбранное время вне рабочих часов помещения"
	msgSlotJustTaken        = "выбранный слот только что заняли, обновите доступность"
	msgPastTime             = "нельзя забронировать время в прошлом"
	msgBadSchedule          = "расписание помещения настроено некорректно"
	msgInvalidInputData     = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	residentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(residentID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotOccupied):
			// Конфликт на коммите: между проверкой на UI и вставкой слот заняли
			h.logger.Warn("POST /reservations - Slot occupied: space_id=%d, resident_id=%d",
				req.SpaceID, residentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotJustTaken)

		case errors.Is(err, availability.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid range: space_id=%d, resident_id=%d",
				req.SpaceID, residentID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availability.ErrMultiDayNotSupported):
			h.logger.Warn("POST /reservations - Multi-day not supported: space_id=%d, resident_id=%d",
				req.SpaceID, residentID)
			handlers.RespondBadRequest(w, msgMultiDayNotSupported)

		case errors.Is(err, availability.ErrDayNotAvailable):
			h.logger.Warn("POST /reservations - Day not available: space_id=%d, resident_id=%d",
				req.SpaceID, residentID)
			handlers.RespondBadRequest(w, msgDayNotAvailable)

		case errors.Is(err, availability.ErrOutsideOperatingHours):
			h.logger.Warn("POST /reservations - Outside operating hours: space_id=%d, resident_id=%d",
				req.SpaceID, residentID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, availability.ErrPastTime):
			h.logger.Warn("POST /reservations - Past time: space_id=%d, resident_id=%d",
				req.SpaceID, residentID)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createReservation.ErrSpaceNotFound):
			h.logger.Warn("POST /reservations - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createReservation.ErrResidentNotFound):
			h.logger.Warn("POST /reservations - Resident not found: resident_id=%d", residentID)
			handlers.RespondNotFound(w, msgResidentNotFound)

		case errors.Is(err, createReservation.ErrResidentInactive):
			h.logger.Warn("POST /reservations - Resident inactive: resident_id=%d", residentID)
			handlers.RespondForbidden(w, msgResidentInactive)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: space_id=%d, error=%v", req.SpaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInputData)

		case errors.Is(err, createReservation.ErrScheduleMisconfigured):
			h.logger.Error("POST /reservations - Schedule misconfigured: space_id=%d, error=%v",
				req.SpaceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBadSchedule)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: space_id=%d, resident_id=%d, error=%v",
				req.SpaceID, residentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, space_id=%d, resident_id=%d",
		result.ID, req.SpaceID, residentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
