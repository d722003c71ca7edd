package list_boats

import (
	"context"

	"github.com/m04kA/BCM-BookingService/internal/service/boats/models"
)

type BoatService interface {
	List(ctx context.Context) (*models.BoatListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
