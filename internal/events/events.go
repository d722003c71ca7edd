// Package events контракты событий, публикуемых сервисом в topic exchange.
package events

import "time"

// Routing keys событий бронирования
const (
	RoutingKeyBookingConfirmed = "booking.confirmed"
)

// BookingConfirmed публикуется реконсилятором после успешной записи
// подтверждённого бронирования. Публикация best-effort: подписчики
// (нотификатор владельцев) не участвуют в корректности реконсиляции.
type BookingConfirmed struct {
	Event      string               `json:"event"`   // "booking.confirmed"
	Version    int                  `json:"version"` // 1
	OccurredAt string               `json:"occurred_at"`
	Data       BookingConfirmedData `json:"data"`
}

// BookingConfirmedData полезная нагрузка события
type BookingConfirmedData struct {
	BookingID  string  `json:"booking_id"`
	BoatID     string  `json:"boat_id"`
	BoatName   string  `json:"boat_name"`
	Date       string  `json:"date"`
	Slot       string  `json:"slot"`
	UserID     string  `json:"user_id"`
	OwnerID    string  `json:"owner_id"`
	OwnerEmail string  `json:"owner_email"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

// NewBookingConfirmed создает событие с текущим временем
func NewBookingConfirmed(data BookingConfirmedData) BookingConfirmed {
	return BookingConfirmed{
		Event:      RoutingKeyBookingConfirmed,
		Version:    1,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Data:       data,
	}
}
