package stripeclient

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платёжной платформы. Оборачивает stripe-go client.API:
// API-хэндл создаётся один раз на процесс и передаётся по ссылке,
// без пакетного синглтона.
type Client struct {
	api *client.API
	log Logger
}

// NewClient создает новый экземпляр клиента платёжной платформы
func NewClient(secretKey string, log Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{api: api, log: log}
}

// CreateCheckoutSession создает hosted checkout session с одной позицией
// и переданными метаданными. Никаких записей в хранилище не делает.
func (c *Client) CreateCheckoutSession(ctx context.Context, in *CreateSessionInput) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(in.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(in.ProductName),
						Description: stripe.String(in.ProductDescription),
					},
					UnitAmount: stripe.Int64(in.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx

	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		c.log.Error("CreateCheckoutSession: stripe error: %v", err)
		return nil, fmt.Errorf("%w: create checkout session: %v", ErrInternal, err)
	}

	c.log.Info("CreateCheckoutSession: created session id=%s amount=%d %s", sess.ID, in.UnitAmount, in.Currency)
	return FromStripeSession(sess), nil
}

// GetCheckoutSession получает checkout session по ID. Авторитетный источник
// статуса платежа для pull-пути верификации: метаданным из сессии можно
// доверять только после этого запроса.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			c.log.Warn("GetCheckoutSession: session id=%s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		c.log.Error("GetCheckoutSession: stripe error for session id=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: retrieve checkout session: %v", ErrInternal, err)
	}

	return FromStripeSession(sess), nil
}
