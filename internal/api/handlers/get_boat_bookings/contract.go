package get_boat_bookings

import (
	"context"
	"time"

	"github.com/m04kA/BCM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBoatBookings(ctx context.Context, boatID string, userID string, date *time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
