package create_checkout_session

import (
	"context"
	"fmt"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
)

// Пути redirect-адресов hosted checkout. Плейсхолдер session_id
// подставляется платёжной платформой при redirect.
const (
	successPath = "/booking-success?session_id={CHECKOUT_SESSION_ID}"
	cancelPath  = "/booking-cancelled"
)

// UseCase use case инициации оплаты: создаёт hosted checkout session
// с BookingIntent в метаданных. Ничего не пишет в хранилище - бронирование
// появится только после подтверждения оплаты реконсилятором.
type UseCase struct {
	stripeClient StripeClient
	appURL       string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(stripeClient StripeClient, appURL string, logger Logger) *UseCase {
	return &UseCase{
		stripeClient: stripeClient,
		appURL:       appURL,
		logger:       logger,
	}
}

// Execute выполняет use case создания checkout session
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckoutSession: boat=%s, date=%s, slot=%s, user=%s, price=%.2f",
		req.BoatID, req.Date, req.Slot, req.UserID, req.Price)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheckoutSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Конвертируем цену в минорные единицы
	unitAmount, err := toUnitAmount(req.Price)
	if err != nil {
		uc.logger.Warn("CreateCheckoutSession: invalid price %.4f", req.Price)
		return nil, err
	}

	// 3. Собираем intent - он целиком уезжает в метаданные сессии
	// и является единственным носителем данных бронирования через redirect
	intent := &domain.BookingIntent{
		BoatID:     req.BoatID,
		BoatName:   req.BoatName,
		Date:       req.Date,
		Slot:       req.Slot,
		UserID:     req.UserID,
		OwnerID:    req.OwnerID,
		OwnerEmail: req.OwnerEmail,
	}

	// 4. Создаем hosted checkout session
	session, err := uc.stripeClient.CreateCheckoutSession(ctx, &stripeclient.CreateSessionInput{
		ProductName:        fmt.Sprintf("%s Charter", req.BoatName),
		ProductDescription: fmt.Sprintf("Booking for %s at %s", req.Date, req.Slot),
		UnitAmount:         unitAmount,
		Currency:           domain.DefaultCurrency,
		SuccessURL:         uc.appURL + successPath,
		CancelURL:          uc.appURL + cancelPath,
		Metadata:           intent.ToMetadata(),
	})
	if err != nil {
		uc.logger.Error("CreateCheckoutSession: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: failed to create checkout session: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateCheckoutSession: created session id=%s for booking %s",
		session.ID, intent.BookingID())

	return &Response{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}
