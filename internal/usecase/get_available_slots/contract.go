package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// BoatRepository доступ к карточкам лодок
type BoatRepository interface {
	GetByID(ctx context.Context, boatID string) (*domain.Boat, error)
}

// BookingRepository доступ к подтверждённым бронированиям
type BookingRepository interface {
	GetByBoatAndDate(ctx context.Context, boatID string, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
