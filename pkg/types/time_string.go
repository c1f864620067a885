package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOverflow = errors.New("time overflows past midnight")
)

// TimeString время в формате "HH:MM" без даты и таймзоны.
// Используется для хранения wall-clock времени (расписания, слоты, брони):
// значение никогда не интерпретируется через таймзону.
type TimeString string

// NewTimeString создает TimeString из компонентов времени time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := t.Minutes(); err != nil {
		return err
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	var h, m int
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return h*60 + m, nil
}

// mustMinutes возвращает минуты, игнорируя ошибку (для сравнений).
// Невалидное значение сравнивается как 00:00.
func (t TimeString) mustMinutes() int {
	m, err := t.Minutes()
	if err != nil {
		return 0
	}
	return m
}

// IsBefore возвращает true, если время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.mustMinutes() < other.mustMinutes()
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.mustMinutes() > other.mustMinutes()
}

// Equal возвращает true, если времена совпадают
func (t TimeString) Equal(other TimeString) bool {
	return t.mustMinutes() == other.mustMinutes()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Выход за пределы суток — ошибка: расписания не пересекают полночь.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// MinutesUntil возвращает количество минут от t до other (отрицательное, если other раньше)
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	to, err := other.Minutes()
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Поддерживает TIME колонки postgres (приходят как строка "HH:MM:SS" или time.Time).
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		if len(v) > 5 {
			v = v[:5]
		}
		ts, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}
