package submit_review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	boatstore "github.com/m04kA/BCM-BookingService/internal/infra/storage/boat"
	reviewstore "github.com/m04kA/BCM-BookingService/internal/infra/storage/review"
)

// UseCase публикация отзыва с пересчётом агрегированного рейтинга лодки
type UseCase struct {
	boatRepo    BoatRepository
	bookingRepo BookingRepository
	reviewRepo  ReviewRepository
	txManager   TxManager
	logger      Logger
}

// NewUseCase создает экземпляр UseCase
func NewUseCase(
	boatRepo BoatRepository,
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		boatRepo:    boatRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute публикует отзыв. Ворота проверяются до записи: автор не владелец
// лодки, у автора есть подтверждённое бронирование, отзыв ещё не оставлен.
// Запись отзыва и пересчёт рейтинга выполняются в одной сериализуемой
// транзакции; уникальность пары (boat, user) дополнительно гарантирует
// ограничение в БД, поэтому гонка двух параллельных отзывов одного
// пользователя завершается ErrAlreadyReviewed, а не дублем.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitReview: невалидный запрос: %v", err)
		return nil, err
	}

	boat, err := uc.boatRepo.GetByID(ctx, req.BoatID)
	if err != nil {
		if errors.Is(err, boatstore.ErrBoatNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBoatNotFound, req.BoatID)
		}
		uc.logger.Error("SubmitReview: ошибка чтения лодки %s: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if boat.IsOwnedBy(req.UserID) {
		uc.logger.Warn("SubmitReview: владелец %s пытается оставить отзыв на свою лодку %s", req.UserID, req.BoatID)
		return nil, ErrOwnReview
	}

	hasBooking, err := uc.bookingRepo.HasConfirmedForUser(ctx, req.BoatID, req.UserID)
	if err != nil {
		uc.logger.Error("SubmitReview: ошибка проверки бронирований пользователя %s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !hasBooking {
		return nil, ErrNoConfirmedBooking
	}

	exists, err := uc.reviewRepo.ExistsByBoatAndUser(ctx, req.BoatID, req.UserID)
	if err != nil {
		uc.logger.Error("SubmitReview: ошибка проверки существующего отзыва: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := &domain.Review{
		ID:       uuid.NewString(),
		BoatID:   boat.ID,
		BoatName: boat.Name,
		OwnerID:  boat.OwnerID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Stars:    req.Stars,
		Text:     req.Text,
	}

	var (
		rating       float64
		reviewsCount int
	)

	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		created, err := uc.reviewRepo.Create(ctx, review)
		if err != nil {
			return err
		}
		review = created

		sum, count, err := uc.reviewRepo.AggregateByBoat(ctx, boat.ID)
		if err != nil {
			return err
		}

		rating = domain.RoundRating(sum, count)
		reviewsCount = count

		return uc.boatRepo.UpdateRating(ctx, boat.ID, rating, reviewsCount)
	})
	if err != nil {
		if errors.Is(err, reviewstore.ErrAlreadyExists) {
			return nil, ErrAlreadyReviewed
		}
		uc.logger.Error("SubmitReview: ошибка записи отзыва на лодку %s: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitReview: отзыв %s на лодку %s, новый рейтинг %.1f (%d отзывов)",
		review.ID, boat.ID, rating, reviewsCount)

	return toResponse(review, rating, reviewsCount), nil
}
