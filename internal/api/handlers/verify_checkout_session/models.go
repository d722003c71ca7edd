package verify_checkout_session

// VerifySessionRequest HTTP request model
type VerifySessionRequest struct {
	SessionID string `json:"sessionId"`
}

// VerifySessionResponse HTTP response model.
// Поле ok сохранено для совместимости с клиентом: успешный ответ
// всегда означает записанное бронирование.
type VerifySessionResponse struct {
	OK        bool   `json:"ok"`
	BookingID string `json:"bookingId"`
}
