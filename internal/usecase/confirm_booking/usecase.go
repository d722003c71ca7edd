package confirm_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/internal/events"
	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
)

// UseCase реконсилятор бронирований: превращает завершённую оплату
// checkout session в ровно одну запись подтверждённого бронирования.
//
// Вызывается двумя независимыми путями с одной и той же сессией:
//   - push: webhook-событие платёжной платформы (at-least-once);
//   - pull: клиентская верификация после redirect.
//
// Оба пути могут выполняться параллельно; корректность обеспечивает
// идемпотентный upsert по детерминированному ID - оба пишут одни и те же
// поля из одних и тех же авторитетных данных сессии.
type UseCase struct {
	bookingRepo BookingRepository
	boatRepo    BoatRepository
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// publisher может быть nil - тогда события не публикуются.
func NewUseCase(
	bookingRepo BookingRepository,
	boatRepo BoatRepository,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		boatRepo:    boatRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute записывает подтверждённое бронирование по оплаченной сессии
func (uc *UseCase) Execute(ctx context.Context, session *stripeclient.CheckoutSession) (*Response, error) {
	// 1. Проверяем, что платёж действительно завершён
	if !session.IsPaid() {
		uc.logger.Warn("ConfirmBooking: session id=%s not paid (payment_status=%s, status=%s)",
			session.ID, session.PaymentStatus, session.Status)
		return nil, fmt.Errorf("%w: payment_status=%s, status=%s",
			ErrNotPaid, session.PaymentStatus, session.Status)
	}

	// 2. Извлекаем intent из метаданных сессии
	intent, ok := domain.IntentFromMetadata(session.Metadata)
	if !ok {
		uc.logger.Error("ConfirmBooking: session id=%s paid but metadata incomplete: %v",
			session.ID, session.Metadata)
		return nil, ErrMalformedIntent
	}

	bookingDate, err := time.Parse(domain.DateFormat, intent.Date)
	if err != nil {
		uc.logger.Error("ConfirmBooking: session id=%s has unparseable date %q", session.ID, intent.Date)
		return nil, fmt.Errorf("%w: invalid date %q", ErrMalformedIntent, intent.Date)
	}

	// 3. Детерминированный ID - чистая функция intent, не session id:
	// повторная оплата того же intent под другой сессией и redelivery
	// одного события пишут в одну и ту же запись
	bookingID := intent.BookingID()

	currency := session.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	booking := &domain.Booking{
		ID:                bookingID,
		BoatID:            intent.BoatID,
		BoatName:          intent.BoatName,
		Date:              bookingDate,
		Slot:              intent.Slot,
		UserID:            intent.UserID,
		OwnerID:           intent.OwnerID,
		OwnerEmail:        intent.OwnerEmail,
		Amount:            float64(session.AmountTotal) / 100,
		Currency:          currency,
		Status:            domain.StatusConfirmed,
		CheckoutSessionID: session.ID,
		PaymentIntentID:   session.PaymentIntentID,
		CustomerEmail:     session.CustomerEmail,
	}

	// 4. Идемпотентный upsert - единственная авторитетная запись
	created, err := uc.bookingRepo.Upsert(ctx, booking)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to write booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	uc.logger.Info("ConfirmBooking: booking id=%s written (session=%s)", bookingID, session.ID)

	// 5. Вспомогательный маркер слота на лодке. Не авторитетен и не влияет
	// на исход реконсиляции - ошибка только логируется
	if err := uc.boatRepo.AddBookedSlot(ctx, intent.BoatID, intent.Date, intent.Slot); err != nil {
		uc.logger.Warn("ConfirmBooking: failed to mark booked slot on boat id=%s: %v", intent.BoatID, err)
	}

	// 6. Best-effort событие для подписчиков (нотификатор владельца)
	uc.publishConfirmed(ctx, created)

	return &Response{
		BookingID: created.ID,
		BoatID:    created.BoatID,
		BoatName:  created.BoatName,
		Date:      created.Date.Format(domain.DateFormat),
		Slot:      created.Slot,
		UserID:    created.UserID,
		Amount:    created.Amount,
		Currency:  created.Currency,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (uc *UseCase) publishConfirmed(ctx context.Context, booking *domain.Booking) {
	if uc.publisher == nil {
		return
	}

	event := events.NewBookingConfirmed(events.BookingConfirmedData{
		BookingID:  booking.ID,
		BoatID:     booking.BoatID,
		BoatName:   booking.BoatName,
		Date:       booking.Date.Format(domain.DateFormat),
		Slot:       booking.Slot,
		UserID:     booking.UserID,
		OwnerID:    booking.OwnerID,
		OwnerEmail: booking.OwnerEmail,
		Amount:     booking.Amount,
		Currency:   booking.Currency,
	})

	if err := uc.publisher.PublishJSON(ctx, events.RoutingKeyBookingConfirmed, event); err != nil {
		uc.logger.Warn("ConfirmBooking: failed to publish booking.confirmed for id=%s: %v", booking.ID, err)
	}
}
