package submit_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	"github.com/m04kA/BCM-BookingService/internal/api/middleware"
	submitReview "github.com/m04kA/BCM-BookingService/internal/usecase/submit_review"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidData        = "некорректные данные отзыва"
	msgBoatNotFound       = "лодка не найдена"
	msgOwnReview          = "владелец не может оставить отзыв на свою лодку"
	msgNoBooking          = "отзыв доступен только после подтверждённого бронирования"
	msgAlreadyReviewed    = "отзыв на эту лодку уже оставлен"
)

type Handler struct {
	useCase SubmitReviewUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/boats/{boatId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boatID := vars["boatId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /boats/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /boats/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(boatID, userID))
	if err != nil {
		switch {
		case errors.Is(err, submitReview.ErrInvalidInput):
			h.logger.Warn("POST /boats/{id}/reviews - Invalid input: boat=%s, user=%s: %v", boatID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, submitReview.ErrBoatNotFound):
			h.logger.Warn("POST /boats/{id}/reviews - Boat not found: boat=%s", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, submitReview.ErrOwnReview):
			h.logger.Warn("POST /boats/{id}/reviews - Owner review rejected: boat=%s, user=%s", boatID, userID)
			handlers.RespondForbidden(w, msgOwnReview)

		case errors.Is(err, submitReview.ErrNoConfirmedBooking):
			h.logger.Warn("POST /boats/{id}/reviews - No confirmed booking: boat=%s, user=%s", boatID, userID)
			handlers.RespondForbidden(w, msgNoBooking)

		case errors.Is(err, submitReview.ErrAlreadyReviewed):
			h.logger.Warn("POST /boats/{id}/reviews - Duplicate review: boat=%s, user=%s", boatID, userID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReviewed)

		default:
			h.logger.Error("POST /boats/{id}/reviews - Failed to submit review: boat=%s, user=%s, error=%v",
				boatID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /boats/{id}/reviews - Review submitted: boat=%s, user=%s, rating=%.1f",
		boatID, userID, result.Rating)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
