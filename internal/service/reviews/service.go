package reviews

import (
	"context"
	"errors"
	"fmt"

	boatRepo "github.com/m04kA/BCM-BookingService/internal/infra/storage/boat"
	"github.com/m04kA/BCM-BookingService/internal/service/reviews/models"
)

// Service сервис чтения отзывов
type Service struct {
	reviewRepo ReviewRepository
	boatRepo   BoatRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, boatRepo BoatRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		boatRepo:   boatRepo,
		logger:     logger,
	}
}

// ListByBoat получает отзывы лодки вместе с её агрегированным рейтингом
func (s *Service) ListByBoat(ctx context.Context, boatID string) (*models.ReviewListResponse, error) {
	boat, err := s.boatRepo.GetByID(ctx, boatID)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			s.logger.Warn("ListByBoat: boat id=%s not found", boatID)
			return nil, ErrBoatNotFound
		}
		s.logger.Error("ListByBoat: repository error for boat id=%s: %v", boatID, err)
		return nil, fmt.Errorf("%w: ListByBoat - repository error: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByBoat(ctx, boatID)
	if err != nil {
		s.logger.Error("ListByBoat: repository error listing reviews for boat id=%s: %v", boatID, err)
		return nil, fmt.Errorf("%w: ListByBoat - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews, boat), nil
}
