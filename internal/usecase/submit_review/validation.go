package submit_review

import (
	"fmt"
	"strings"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// validateRequest проверяет данные отзыва
func validateRequest(req Request) error {
	if req.BoatID == "" {
		return fmt.Errorf("%w: boatId is required", ErrInvalidInput)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if !domain.ValidStars(req.Stars) {
		return fmt.Errorf("%w: stars must be between %d and %d, got %d",
			ErrInvalidInput, domain.MinStars, domain.MaxStars, req.Stars)
	}

	if len(strings.TrimSpace(req.Text)) > domain.MaxReviewTextLength {
		return fmt.Errorf("%w: review text exceeds %d characters", ErrInvalidInput, domain.MaxReviewTextLength)
	}

	return nil
}
