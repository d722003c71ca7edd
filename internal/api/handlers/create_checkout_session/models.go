package create_checkout_session

import (
	createCheckout "github.com/m04kA/BCM-BookingService/internal/usecase/create_checkout_session"
)

// CreateCheckoutSessionRequest HTTP request model
type CreateCheckoutSessionRequest struct {
	BoatID     string  `json:"boatId"`
	BoatName   string  `json:"boatName"`
	Date       string  `json:"date"` // "2026-07-15"
	Slot       string  `json:"slot"` // "09:00-13:00"
	Price      float64 `json:"price"`
	UserID     string  `json:"userId"`
	OwnerID    string  `json:"ownerId"`
	OwnerEmail string  `json:"ownerEmail"`
}

// CheckoutSessionResponse HTTP response model
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateCheckoutSessionRequest) ToUseCaseRequest() *createCheckout.Request {
	return &createCheckout.Request{
		BoatID:     r.BoatID,
		BoatName:   r.BoatName,
		Date:       r.Date,
		Slot:       r.Slot,
		Price:      r.Price,
		UserID:     r.UserID,
		OwnerID:    r.OwnerID,
		OwnerEmail: r.OwnerEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		SessionID: resp.SessionID,
		URL:       resp.URL,
	}
}
