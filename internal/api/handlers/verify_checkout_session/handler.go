package verify_checkout_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	confirmBooking "github.com/m04kA/BCM-BookingService/internal/usecase/confirm_booking"
	verifySession "github.com/m04kA/BCM-BookingService/internal/usecase/verify_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSessionID   = "отсутствует sessionId"
	msgSessionNotFound    = "checkout session не найдена"
	msgPaymentNotComplete = "оплата не завершена"
	msgMalformedSession   = "сессия не содержит данных бронирования"
)

type Handler struct {
	useCase VerifySessionUseCase
	logger  Logger
}

func NewHandler(useCase VerifySessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/verify
//
// Pull-путь реконсиляции: вызывается клиентом после redirect со страницы
// оплаты. Повторный вызов с тем же sessionId безопасен и возвращает
// тот же bookingId.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifySessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &verifySession.Request{SessionID: req.SessionID})
	if err != nil {
		switch {
		case errors.Is(err, verifySession.ErrInvalidInput):
			h.logger.Warn("POST /checkout/verify - Missing session ID")
			handlers.RespondBadRequest(w, msgMissingSessionID)

		case errors.Is(err, verifySession.ErrSessionNotFound):
			h.logger.Warn("POST /checkout/verify - Session not found: session=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrNotPaid):
			h.logger.Warn("POST /checkout/verify - Payment not complete: session=%s", req.SessionID)
			handlers.RespondError(w, http.StatusConflict, msgPaymentNotComplete)

		case errors.Is(err, confirmBooking.ErrMalformedIntent):
			h.logger.Error("POST /checkout/verify - Paid session without booking metadata: session=%s", req.SessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgMalformedSession)

		default:
			h.logger.Error("POST /checkout/verify - Failed to verify session: session=%s, error=%v",
				req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/verify - Session verified: session=%s, booking=%s",
		req.SessionID, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, VerifySessionResponse{
		OK:        true,
		BookingID: result.BookingID,
	})
}
