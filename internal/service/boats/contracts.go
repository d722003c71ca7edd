package boats

import (
	"context"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	Create(ctx context.Context, boat *domain.Boat) (*domain.Boat, error)
	GetByID(ctx context.Context, id string) (*domain.Boat, error)
	List(ctx context.Context) ([]*domain.Boat, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
