package stripe_webhook

import (
	"context"

	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
	confirmBooking "github.com/m04kA/BCM-BookingService/internal/usecase/confirm_booking"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, session *stripeclient.CheckoutSession) (*confirmBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
