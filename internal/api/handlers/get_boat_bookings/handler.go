package get_boat_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BCM-BookingService/internal/api/handlers"
	"github.com/m04kA/BCM-BookingService/internal/api/middleware"
	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/internal/service/bookings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBoatNotFound  = "лодка не найдена"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats/{boatId}/bookings?date=YYYY-MM-DD
//
// Доступно только владельцу лодки. Параметр date опционален.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boatID := vars["boatId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /boats/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /boats/{id}/bookings - Invalid date: boat=%s, date=%s", boatID, raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.GetBoatBookings(r.Context(), boatID, userID, date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBoatNotFound):
			h.logger.Warn("GET /boats/{id}/bookings - Boat not found: boat=%s", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /boats/{id}/bookings - Access denied: boat=%s, user_id=%s", boatID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /boats/{id}/bookings - Failed to get bookings: boat=%s, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
