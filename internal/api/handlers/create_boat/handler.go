package create_boat

import (
	"errors"
	"net/http"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	"github.com/m04kA/BCM-BookingService/internal/api/middleware"
	"github.com/m04kA/BCM-BookingService/internal/service/boats"
	"github.com/m04kA/BCM-BookingService/internal/service/boats/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidData        = "некорректные данные лодки"
)

type Handler struct {
	service BoatService
	logger  Logger
}

func NewHandler(service BoatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/boats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /boats - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateBoatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /boats - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Владельцем карточки всегда становится аутентифицированный пользователь
	req.OwnerID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, boats.ErrInvalidInput):
			h.logger.Warn("POST /boats - Invalid boat payload: user=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /boats - Failed to create boat: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /boats - Boat created: boat=%s, owner=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
