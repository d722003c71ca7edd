package stripeclient

import stripe "github.com/stripe/stripe-go/v79"

// Статусы checkout session, на которые опирается реконсилятор
const (
	PaymentStatusPaid = "paid"
	SessionComplete   = "complete"
)

// CheckoutSession снимок hosted checkout session платёжной платформы.
// Внутренняя модель: use case'ы и тесты не зависят от типов stripe-go.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	Status        string
	// Metadata непрозрачные строковые метаданные; несут BookingIntent
	// через redirect-границу
	Metadata map[string]string
	// AmountTotal сумма в минорных единицах валюты
	AmountTotal     int64
	Currency        string
	PaymentIntentID string
	CustomerEmail   string
}

// IsPaid сообщает, подтверждён ли платёж по сессии
func (s *CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid || s.Status == SessionComplete
}

// CreateSessionInput параметры создания checkout session
type CreateSessionInput struct {
	ProductName        string
	ProductDescription string
	// UnitAmount цена в минорных единицах валюты
	UnitAmount int64
	Currency   string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// FromStripeSession конвертирует сессию stripe-go во внутреннюю модель.
// Используется клиентом и webhook-обработчиком (который получает сессию
// прямо в теле события, без дополнительного запроса).
func FromStripeSession(s *stripe.CheckoutSession) *CheckoutSession {
	if s == nil {
		return nil
	}

	session := &CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		Status:        string(s.Status),
		Metadata:      s.Metadata,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
	}

	if s.PaymentIntent != nil {
		session.PaymentIntentID = s.PaymentIntent.ID
	}

	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		session.CustomerEmail = s.CustomerDetails.Email
	} else {
		session.CustomerEmail = s.CustomerEmail
	}

	return session
}
