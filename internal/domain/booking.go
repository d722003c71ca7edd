package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed is the only status a booking can carry: records are
	// created by the payment reconciler after a paid checkout session and
	// are immutable afterwards. There is no pending or cancelled state.
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a paid charter booking in the system
type Booking struct {
	ID         string // deterministic: boatId__date__slot__userId
	BoatID     string
	BoatName   string
	Date       time.Time // calendar day of the charter
	Slot       string    // time range "HH:MM-HH:MM"
	UserID     string    // payer
	OwnerID    string
	OwnerEmail string

	// Payment data captured from the checkout session
	Amount            float64 // major currency units
	Currency          string
	CheckoutSessionID string
	PaymentIntentID   string
	CustomerEmail     string

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed reports whether the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// BookingID derives the deterministic booking identifier from the booking
// intent. Keying by the intent (not by the checkout session id) makes the
// reconciling write idempotent across webhook redeliveries and across
// distinct sessions paying for the same intent.
func BookingID(boatID, date, slot, userID string) string {
	return strings.Join([]string{boatID, date, slot, userID}, "__")
}
