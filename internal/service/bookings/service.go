package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	boatRepo "github.com/m04kA/BCM-BookingService/internal/infra/storage/boat"
	bookingRepo "github.com/m04kA/BCM-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/BCM-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	boatRepo    BoatRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, boatRepo BoatRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		boatRepo:    boatRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - бронирование видят только плательщик и владелец лодки
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && booking.OwnerID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя, сначала свежие даты
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBoatBookings получает бронирования лодки
// Доступно только владельцу лодки. Опциональный фильтр по дате.
func (s *Service) GetBoatBookings(ctx context.Context, boatID string, userID string, date *time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("GetBoatBookings: fetching bookings for boat=%s, user=%s", boatID, userID)

	boat, err := s.boatRepo.GetByID(ctx, boatID)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			s.logger.Warn("GetBoatBookings: boat id=%s not found", boatID)
			return nil, ErrBoatNotFound
		}
		s.logger.Error("GetBoatBookings: repository error for boat id=%s: %v", boatID, err)
		return nil, fmt.Errorf("%w: GetBoatBookings - repository error: %v", ErrInternal, err)
	}

	if !boat.IsOwnedBy(userID) {
		s.logger.Warn("GetBoatBookings: user=%s is not the owner of boat=%s", userID, boatID)
		return nil, ErrAccessDenied
	}

	if date != nil {
		list, err := s.bookingRepo.GetByBoatAndDate(ctx, boatID, *date)
		if err != nil {
			s.logger.Error("GetBoatBookings: repository error for boat id=%s: %v", boatID, err)
			return nil, fmt.Errorf("%w: GetBoatBookings - repository error: %v", ErrInternal, err)
		}
		return models.FromDomainBookingList(list), nil
	}

	list, err := s.bookingRepo.GetByBoat(ctx, boatID)
	if err != nil {
		s.logger.Error("GetBoatBookings: repository error for boat id=%s: %v", boatID, err)
		return nil, fmt.Errorf("%w: GetBoatBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBoatBookings: fetched %d bookings for boat=%s", len(list), boatID)
	return models.FromDomainBookingList(list), nil
}
