package get_calendar_availability

// Request модель запроса месячной сетки доступности
type Request struct {
	SpaceID int64 // ID помещения
	Year    int   // Год (например, 2026)
	Month   int   // Месяц 1..12
}

// Response модель ответа с доступностью каждого дня месяца
type Response struct {
	SpaceID int64 // ID помещения
	Year    int
	Month   int
	Days    []Day // По одной записи на каждый день месяца
}

// Day доступность одного календарного дня
type Day struct {
	Date     string // YYYY-MM-DD
	Bookable bool   // Есть ли в дне хотя бы один свободный слот
}
