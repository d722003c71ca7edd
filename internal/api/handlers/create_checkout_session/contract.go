package create_checkout_session

import (
	"context"

	createCheckout "github.com/m04kA/BCM-BookingService/internal/usecase/create_checkout_session"
)

type CreateCheckoutSessionUseCase interface {
	Execute(ctx context.Context, req *createCheckout.Request) (*createCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
