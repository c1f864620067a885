package residentservice

import "errors"

var (
	// ErrResidentNotFound возвращается, когда резидент не найден
	ErrResidentNotFound = errors.New("resident not found")

	// ErrResidentInactive возвращается, когда учетная запись резидента деактивирована
	ErrResidentInactive = errors.New("resident account is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("residentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("residentservice client: invalid response")
)
