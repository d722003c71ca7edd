package verify_session

import (
	"context"
	"errors"
	"fmt"

	stripeClient "github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
)

// UseCase pull-путь реконсиляции: клиент после redirect знает только
// session id. Сессия заново запрашивается у платёжной платформы -
// авторитетный источник статуса и метаданных; никакие поля бронирования
// из клиентского запроса не используются.
type UseCase struct {
	stripeClient StripeClient
	confirmUC    ConfirmBookingUseCase
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(stripeClient StripeClient, confirmUC ConfirmBookingUseCase, logger Logger) *UseCase {
	return &UseCase{
		stripeClient: stripeClient,
		confirmUC:    confirmUC,
		logger:       logger,
	}
}

// Request модель запроса верификации
type Request struct {
	SessionID string
}

// Response модель ответа с ID записанного бронирования
type Response struct {
	BookingID string
}

// Execute выполняет use case верификации сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, ErrInvalidInput
	}

	uc.logger.Info("VerifySession: verifying session id=%s", req.SessionID)

	session, err := uc.stripeClient.GetCheckoutSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, stripeClient.ErrSessionNotFound) {
			uc.logger.Warn("VerifySession: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("VerifySession: failed to retrieve session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to retrieve session: %v", ErrInternal, err)
	}

	// Реконсилятор сам проверит оплату и метаданные; его ошибки
	// (ErrNotPaid, ErrMalformedIntent, ErrStorage) пробрасываются
	// обработчику как есть
	result, err := uc.confirmUC.Execute(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("VerifySession: session id=%s confirmed booking id=%s", req.SessionID, result.BookingID)

	return &Response{BookingID: result.BookingID}, nil
}
