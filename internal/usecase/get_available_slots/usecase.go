package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	storage "github.com/m04kA/BCM-BookingService/internal/infra/storage/boat"
)

// UseCase проекция доступности: разворачивает правило лодки в кандидаты
// и вычитает занятые слоты из подтверждённых бронирований
type UseCase struct {
	boatRepo    BoatRepository
	bookingRepo BookingRepository
	logger      Logger

	// now подменяется в тестах
	now func() time.Time
}

// NewUseCase создает экземпляр UseCase
func NewUseCase(boatRepo BoatRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		boatRepo:    boatRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Execute возвращает доступные и занятые слоты лодки на дату.
// Проекция считается на чтении: источником истины служат подтверждённые
// бронирования в хранилище плюс маркеры в карточке лодки.
// Для прошедших дат доступных слотов нет.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: невалидный запрос: %v", err)
		return nil, err
	}

	boat, err := uc.boatRepo.GetByID(ctx, req.BoatID)
	if err != nil {
		if errors.Is(err, storage.ErrBoatNotFound) {
			uc.logger.Warn("GetAvailableSlots: лодка %s не найдена", req.BoatID)
			return nil, fmt.Errorf("%w: %s", ErrBoatNotFound, req.BoatID)
		}
		uc.logger.Error("GetAvailableSlots: ошибка чтения лодки %s: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	candidates := generateSlots(boat.Rule)

	booked, err := uc.collectBooked(ctx, boat, req.Date, date)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		BoatID:      boat.ID,
		Date:        req.Date,
		BookedSlots: booked,
	}

	if isDateInPast(date, uc.now()) {
		resp.AvailableSlots = []string{}
		return resp, nil
	}

	resp.AvailableSlots = subtractBooked(candidates, booked)
	return resp, nil
}

// collectBooked объединяет слоты подтверждённых бронирований с маркерами
// из карточки лодки. Маркеры пишутся по принципу best effort и могут
// отставать, поэтому ряды бронирований всегда главнее.
func (uc *UseCase) collectBooked(ctx context.Context, boat *domain.Boat, dateKey string, date time.Time) ([]string, error) {
	bookings, err := uc.bookingRepo.GetByBoatAndDate(ctx, boat.ID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: ошибка чтения бронирований лодки %s на %s: %v", boat.ID, dateKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	seen := make(map[string]struct{}, len(bookings))
	booked := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.Slot]; ok {
			continue
		}
		seen[b.Slot] = struct{}{}
		booked = append(booked, b.Slot)
	}

	for _, slot := range boat.BookedSlots[dateKey] {
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		booked = append(booked, slot)
	}

	return booked, nil
}
