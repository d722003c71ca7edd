package confirm_booking

import "errors"

var (
	// ErrNotPaid возвращается, когда платёж по сессии не завершён.
	// Pull-путь показывает это пользователю; push-путь молча
	// игнорирует событие.
	ErrNotPaid = errors.New("confirm_booking: payment not confirmed")

	// ErrMalformedIntent возвращается, когда оплаченная сессия не несёт
	// обязательных полей BookingIntent в метаданных. Для push-пути это
	// терминальная ошибка с подтверждением приёма - иначе платформа
	// будет передоставлять событие бесконечно.
	ErrMalformedIntent = errors.New("confirm_booking: missing required booking metadata")

	// ErrStorage возвращается при транзиентной ошибке хранилища.
	// Единственный класс ошибок, который push-путь сигналит как retryable.
	ErrStorage = errors.New("confirm_booking: storage failure")
)
