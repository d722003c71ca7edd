package verify_session

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии sessionId
	ErrInvalidInput = errors.New("verify_session: sessionId is required")

	// ErrSessionNotFound возвращается, когда сессия не найдена на платформе
	ErrSessionNotFound = errors.New("verify_session: checkout session not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_session: internal error")
)
