package create_checkout_session

import (
	"context"

	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
)

// StripeClient интерфейс клиента платёжной платформы
type StripeClient interface {
	CreateCheckoutSession(ctx context.Context, in *stripeclient.CreateSessionInput) (*stripeclient.CheckoutSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
