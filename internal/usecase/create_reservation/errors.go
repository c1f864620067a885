package create_reservation

import "errors"

// Ошибки отказов валидации кандидата (invalid range, occupied slot и т.д.)
// не дублируются здесь: usecase возвращает сентинелы пакета availability
// как есть, хендлер матчит их через errors.Is.
var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("create_reservation: space not found")

	// ErrResidentNotFound возвращается, когда резидент не найден
	ErrResidentNotFound = errors.New("create_reservation: resident not found")

	// ErrResidentInactive возвращается, когда учетная запись резидента деактивирована
	ErrResidentInactive = errors.New("create_reservation: resident account is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrScheduleMisconfigured возвращается при некорректной конфигурации недельного расписания
	ErrScheduleMisconfigured = errors.New("create_reservation: space schedule is misconfigured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
