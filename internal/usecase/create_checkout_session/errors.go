package create_checkout_session

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей запроса
	ErrInvalidInput = errors.New("create_checkout_session: invalid input data")

	// ErrInvalidPrice возвращается, когда цена не конвертируется
	// в положительную целую сумму в минорных единицах валюты
	ErrInvalidPrice = errors.New("create_checkout_session: invalid price")

	// ErrBoatNotFound возвращается, когда лодка не найдена
	ErrBoatNotFound = errors.New("create_checkout_session: boat not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout_session: internal error")
)
