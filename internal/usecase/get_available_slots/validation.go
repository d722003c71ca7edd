package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// validateRequest проверяет параметры запроса и возвращает разобранную дату
func validateRequest(req Request) (time.Time, error) {
	if req.BoatID == "" {
		return time.Time{}, fmt.Errorf("%w: boatId is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidInput, req.Date)
	}

	return date, nil
}
