package stripe_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
	confirmBooking "github.com/m04kA/BCM-BookingService/internal/usecase/confirm_booking"
)

const (
	// Платформа ограничивает размер событий, лимит с запасом
	maxBodyBytes = int64(65536)

	eventCheckoutCompleted = "checkout.session.completed"

	msgInvalidSignature = "некорректная подпись события"
	msgStorageFailure   = "ошибка записи бронирования"
)

// ReceivedResponse подтверждение приёма события
type ReceivedResponse struct {
	Received bool `json:"received"`
}

type Handler struct {
	confirmUC     ConfirmBookingUseCase
	signingSecret string
	logger        Logger
}

func NewHandler(confirmUC ConfirmBookingUseCase, signingSecret string, logger Logger) *Handler {
	return &Handler{
		confirmUC:     confirmUC,
		signingSecret: signingSecret,
		logger:        logger,
	}
}

// Handle POST /webhooks/stripe
//
// Push-путь реконсиляции. Дисциплина подтверждения приёма:
//   - 400 только при невалидной подписи - событие не наше;
//   - 500 только при ошибке хранилища - платформа передоставит событие;
//   - всё остальное подтверждается 200, включая оплаченные сессии с
//     битыми метаданными: их передоставка не исправит, а бесконечные
//     повторы забивают очередь доставки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSignature)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.signingSecret)
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Signature verification failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSignature)
		return
	}

	if event.Type != eventCheckoutCompleted {
		h.logger.Info("POST /webhooks/stripe - Ignoring event type=%s id=%s", event.Type, event.ID)
		handlers.RespondJSON(w, http.StatusOK, ReceivedResponse{Received: true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		// Подпись валидна, но тело события не разбирается: передоставка
		// не поможет, подтверждаем приём
		h.logger.Error("POST /webhooks/stripe - Failed to unmarshal session from event id=%s: %v", event.ID, err)
		handlers.RespondJSON(w, http.StatusOK, ReceivedResponse{Received: true})
		return
	}

	_, err = h.confirmUC.Execute(r.Context(), stripeclient.FromStripeSession(&session))
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrNotPaid):
			h.logger.Warn("POST /webhooks/stripe - Completed event with unpaid session: session=%s", session.ID)
			handlers.RespondJSON(w, http.StatusOK, ReceivedResponse{Received: true})

		case errors.Is(err, confirmBooking.ErrMalformedIntent):
			h.logger.Error("POST /webhooks/stripe - Paid session without booking metadata: session=%s", session.ID)
			handlers.RespondJSON(w, http.StatusOK, ReceivedResponse{Received: true})

		default:
			h.logger.Error("POST /webhooks/stripe - Storage failure for session=%s: %v", session.ID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgStorageFailure)
		}
		return
	}

	h.logger.Info("POST /webhooks/stripe - Booking confirmed from event id=%s, session=%s", event.ID, session.ID)
	handlers.RespondJSON(w, http.StatusOK, ReceivedResponse{Received: true})
}
