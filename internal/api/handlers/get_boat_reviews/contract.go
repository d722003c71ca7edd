package get_boat_reviews

import (
	"context"

	"github.com/m04kA/BCM-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	ListByBoat(ctx context.Context, boatID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
