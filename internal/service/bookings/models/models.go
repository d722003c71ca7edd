// Package models модели ответов сервиса бронирований
package models

import (
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID                string    `json:"id"`
	BoatID            string    `json:"boatId"`
	BoatName          string    `json:"boatName"`
	Date              string    `json:"date"`
	Slot              string    `json:"slot"`
	UserID            string    `json:"userId"`
	OwnerID           string    `json:"ownerId,omitempty"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	CheckoutSessionID string    `json:"checkoutSessionId,omitempty"`
	CustomerEmail     string    `json:"customerEmail,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		BoatID:            b.BoatID,
		BoatName:          b.BoatName,
		Date:              b.Date.Format(domain.DateFormat),
		Slot:              b.Slot,
		UserID:            b.UserID,
		OwnerID:           b.OwnerID,
		Amount:            b.Amount,
		Currency:          b.Currency,
		Status:            string(b.Status),
		CheckoutSessionID: b.CheckoutSessionID,
		CustomerEmail:     b.CustomerEmail,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
