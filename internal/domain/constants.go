package domain

// SlotStepMinutes шаг сетки слотов. Фиксированный: пикер времени в UI
// показывает получасовые точки.
const SlotStepMinutes = 30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// InactiveStatuses список статусов, при которых бронь не занимает свой диапазон.
// Используется при построении индекса занятости.
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByResident,
	StatusCancelledByManager,
}

// ActiveStatuses список статусов, при которых бронь занимает свой диапазон
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
}
