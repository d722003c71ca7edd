package get_boat

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	"github.com/m04kA/BCM-BookingService/internal/service/boats"
)

const msgBoatNotFound = "лодка не найдена"

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

// Handle GET /api/v1/boats/{boatId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boatID := vars["boatId"]

	result, err := h.service.GetByID(r.Context(), boatID)
	if err != nil {
		switch {
		case errors.Is(err, boats.ErrBoatNotFound):
			h.logger.Warn("GET /boats/{id} - Boat not found: boat=%s", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		default:
			h.logger.Error("GET /boats/{id} - Failed to get boat: boat=%s, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
