package submit_review

import (
	"context"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// BoatRepository доступ к карточкам лодок
type BoatRepository interface {
	GetByID(ctx context.Context, boatID string) (*domain.Boat, error)
	UpdateRating(ctx context.Context, boatID string, rating float64, reviewsCount int) error
}

// BookingRepository проверка подтверждённых бронирований
type BookingRepository interface {
	HasConfirmedForUser(ctx context.Context, boatID, userID string) (bool, error)
}

// ReviewRepository доступ к отзывам
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ExistsByBoatAndUser(ctx context.Context, boatID, userID string) (bool, error)
	AggregateByBoat(ctx context.Context, boatID string) (sum float64, count int, err error)
}

// TxManager выполнение операций внутри сериализуемой транзакции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
