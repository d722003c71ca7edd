package verify_session

import (
	"context"

	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
	confirmBooking "github.com/m04kA/BCM-BookingService/internal/usecase/confirm_booking"
)

// StripeClient интерфейс клиента платёжной платформы
type StripeClient interface {
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripeclient.CheckoutSession, error)
}

// ConfirmBookingUseCase интерфейс реконсилятора бронирований
type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, session *stripeclient.CheckoutSession) (*confirmBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
