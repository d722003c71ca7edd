package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	availableSlots "github.com/m04kA/BCM-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate  = "отсутствует параметр date"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBoatNotFound = "лодка не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats/{boatId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boatID := vars["boatId"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /boats/{id}/slots - Missing date parameter: boat=%s", boatID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), availableSlots.Request{
		BoatID: boatID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, availableSlots.ErrInvalidInput):
			h.logger.Warn("GET /boats/{id}/slots - Invalid params: boat=%s, date=%s", boatID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availableSlots.ErrBoatNotFound):
			h.logger.Warn("GET /boats/{id}/slots - Boat not found: boat=%s", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		default:
			h.logger.Error("GET /boats/{id}/slots - Failed to get slots: boat=%s, date=%s, error=%v",
				boatID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
