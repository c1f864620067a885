package schedule

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("space not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrDuplicateWeekday возвращается, когда на один день недели задано больше одного правила
	ErrDuplicateWeekday = errors.New("duplicate weekday rule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
