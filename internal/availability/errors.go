package availability

import "errors"

// Типизированные причины отказа. Каждая проверка валидатора и резолвера
// расписания отображается ровно в одну из них; движок никогда не паникует
// на некорректном входе.
var (
	// ErrInvalidRange возвращается, когда конец диапазона не позже начала
	ErrInvalidRange = errors.New("availability: end must be after start")

	// ErrMultiDayNotSupported возвращается, когда бронь пересекает границу календарного дня
	ErrMultiDayNotSupported = errors.New("availability: multi-day reservations are not supported")

	// ErrDayNotAvailable возвращается, когда день недели закрыт (нет правила или день заблокирован)
	ErrDayNotAvailable = errors.New("availability: space is closed on this day")

	// ErrOutsideOperatingHours возвращается, когда диапазон выходит за рабочее окно дня
	ErrOutsideOperatingHours = errors.New("availability: time range is outside operating hours")

	// ErrSlotOccupied возвращается, когда диапазон пересекается с существующей бронью
	ErrSlotOccupied = errors.New("availability: time range overlaps an existing reservation")

	// ErrPastTime возвращается, когда начало брони на сегодня уже прошло
	ErrPastTime = errors.New("availability: start time is in the past")

	// ErrDuplicateRule возвращается, когда на один день недели настроено
	// больше одного правила (ошибка конфигурации расписания, не сливается молча)
	ErrDuplicateRule = errors.New("availability: duplicate weekly rule for weekday")

	// ErrInvalidWindow возвращается, когда правило имеет нулевое или перевёрнутое окно
	ErrInvalidWindow = errors.New("availability: rule open time must be before close time")
)
