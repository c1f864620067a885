package validate_reservation

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("validate_reservation: space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_reservation: invalid input data")

	// ErrScheduleMisconfigured возвращается при некорректной конфигурации недельного расписания
	ErrScheduleMisconfigured = errors.New("validate_reservation: space schedule is misconfigured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_reservation: internal error")
)
