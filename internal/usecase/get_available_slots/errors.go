package get_available_slots

import "errors"

var (
	// ErrInvalidInput невалидные параметры запроса
	ErrInvalidInput = errors.New("invalid input")

	// ErrBoatNotFound лодка не найдена
	ErrBoatNotFound = errors.New("boat not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
