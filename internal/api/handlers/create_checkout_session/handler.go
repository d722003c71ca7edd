package create_checkout_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	"github.com/m04kA/BCM-BookingService/internal/api/middleware"
	createCheckout "github.com/m04kA/BCM-BookingService/internal/usecase/create_checkout_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUserMismatch       = "userId в запросе не совпадает с аутентифицированным пользователем"
	msgInvalidData        = "некорректные данные бронирования"
	msgInvalidPrice       = "некорректная цена"
	msgBoatNotFound       = "лодка не найдена"
)

type Handler struct {
	useCase CreateCheckoutSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCheckoutSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout/sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Плательщиком всегда выступает аутентифицированный пользователь
	if req.UserID == "" {
		req.UserID = userID
	}
	if req.UserID != userID {
		h.logger.Warn("POST /checkout/sessions - User mismatch: body=%s, header=%s", req.UserID, userID)
		handlers.RespondForbidden(w, msgUserMismatch)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrInvalidPrice):
			h.logger.Warn("POST /checkout/sessions - Invalid price: boat=%s, price=%.2f", req.BoatID, req.Price)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, createCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout/sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createCheckout.ErrBoatNotFound):
			h.logger.Warn("POST /checkout/sessions - Boat not found: boat=%s", req.BoatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		default:
			h.logger.Error("POST /checkout/sessions - Failed to create session: boat=%s, user=%s, error=%v",
				req.BoatID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/sessions - Session created: session=%s, boat=%s, user=%s",
		result.SessionID, req.BoatID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
