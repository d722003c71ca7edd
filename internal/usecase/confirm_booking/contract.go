package confirm_booking

import (
	"context"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Upsert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// BoatRepository интерфейс репозитория лодок (вспомогательный маркер слота)
type BoatRepository interface {
	AddBookedSlot(ctx context.Context, id, date, slot string) error
}

// EventPublisher интерфейс публикации событий.
// Может быть nil - тогда события не публикуются.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
