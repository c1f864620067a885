package get_day_slots

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("get_day_slots: space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrScheduleMisconfigured возвращается при некорректной конфигурации
	// недельного расписания (дублирующее правило, перевёрнутое окно)
	ErrScheduleMisconfigured = errors.New("get_day_slots: space schedule is misconfigured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_slots: internal error")
)
