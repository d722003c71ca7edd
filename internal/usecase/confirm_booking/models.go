package confirm_booking

import "time"

// Response модель ответа с записанным бронированием
type Response struct {
	BookingID string
	BoatID    string
	BoatName  string
	Date      string
	Slot      string
	UserID    string
	Amount    float64
	Currency  string
	CreatedAt time.Time
}
