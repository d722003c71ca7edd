package submit_review

import "errors"

var (
	// ErrInvalidInput невалидные параметры запроса
	ErrInvalidInput = errors.New("invalid input")

	// ErrBoatNotFound лодка не найдена
	ErrBoatNotFound = errors.New("boat not found")

	// ErrOwnReview владелец не может оставить отзыв на свою лодку
	ErrOwnReview = errors.New("owner cannot review own boat")

	// ErrNoConfirmedBooking у пользователя нет подтверждённого бронирования лодки
	ErrNoConfirmedBooking = errors.New("no confirmed booking for boat")

	// ErrAlreadyReviewed пользователь уже оставлял отзыв на лодку
	ErrAlreadyReviewed = errors.New("review already exists")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
