package get_boat_reviews

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	"github.com/m04kA/BCM-BookingService/internal/service/reviews"
)

const msgBoatNotFound = "лодка не найдена"

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats/{boatId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boatID := vars["boatId"]

	result, err := h.service.ListByBoat(r.Context(), boatID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrBoatNotFound):
			h.logger.Warn("GET /boats/{id}/reviews - Boat not found: boat=%s", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		default:
			h.logger.Error("GET /boats/{id}/reviews - Failed to list reviews: boat=%s, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
