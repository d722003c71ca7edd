package stripeclient

import "errors"

var (
	// ErrSessionNotFound возвращается, когда checkout session не существует
	ErrSessionNotFound = errors.New("stripeclient: checkout session not found")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("stripeclient: invalid response")

	// ErrInternal возвращается при ошибках обращения к платформе
	ErrInternal = errors.New("stripeclient: internal error")
)
