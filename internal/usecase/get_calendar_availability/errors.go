package get_calendar_availability

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("get_calendar_availability: space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar_availability: invalid input data")

	// ErrScheduleMisconfigured возвращается при некорректной конфигурации недельного расписания
	ErrScheduleMisconfigured = errors.New("get_calendar_availability: space schedule is misconfigured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar_availability: internal error")
)
