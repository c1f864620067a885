package types

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrMalformedDateTime возвращается, когда локальная дата-время или смещение
// не соответствуют ожидаемому формату
var ErrMalformedDateTime = errors.New("malformed local datetime")

var (
	localDateTimePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2})$`)
	utcOffsetPattern     = regexp.MustCompile(`^[+-](\d{2}):(\d{2})$`)
)

// NormalizeLocalDateTime превращает wall-clock дату-время ("YYYY-MM-DDTHH:MM")
// в однозначный instant, дописывая смещение UTC ("±HH:MM"):
//
//	NormalizeLocalDateTime("2026-03-14T19:30", "-03:00") -> "2026-03-14T19:30:00-03:00"
//
// Выбранные пользователем часы и минуты НИКОГДА не сдвигаются: значение не
// переинтерпретируется через другую таймзону, смещение только дописывается.
func NormalizeLocalDateTime(local string, utcOffset string) (string, error) {
	m := localDateTimePattern.FindStringSubmatch(local)
	if m == nil {
		return "", fmt.Errorf("%w: %q, expected YYYY-MM-DDTHH:MM", ErrMalformedDateTime, local)
	}

	if err := validateDateTimeComponents(m); err != nil {
		return "", err
	}

	om := utcOffsetPattern.FindStringSubmatch(utcOffset)
	if om == nil {
		return "", fmt.Errorf("%w: offset %q, expected ±HH:MM", ErrMalformedDateTime, utcOffset)
	}
	if om[1] > "14" || om[2] > "59" {
		return "", fmt.Errorf("%w: offset %q out of range", ErrMalformedDateTime, utcOffset)
	}

	return local + ":00" + utcOffset, nil
}

// validateDateTimeComponents проверяет диапазоны компонентов даты-времени
func validateDateTimeComponents(m []string) error {
	month := m[2]
	day := m[3]
	hour := m[4]
	minute := m[5]

	if month < "01" || month > "12" {
		return fmt.Errorf("%w: month %q out of range", ErrMalformedDateTime, month)
	}
	if day < "01" || day > "31" {
		return fmt.Errorf("%w: day %q out of range", ErrMalformedDateTime, day)
	}
	if hour > "23" {
		return fmt.Errorf("%w: hour %q out of range", ErrMalformedDateTime, hour)
	}
	if minute > "59" {
		return fmt.Errorf("%w: minute %q out of range", ErrMalformedDateTime, minute)
	}
	return nil
}
