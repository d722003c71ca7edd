package verify_checkout_session

import (
	"context"

	verifySession "github.com/m04kA/BCM-BookingService/internal/usecase/verify_session"
)

type VerifySessionUseCase interface {
	Execute(ctx context.Context, req *verifySession.Request) (*verifySession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
