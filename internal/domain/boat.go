package domain

import "time"

// AvailabilityRule describes how a boat's bookable day is sliced into slots.
// Owned by the boat listing; bookings never mutate it.
type AvailabilityRule struct {
	StartHour       int // first bookable hour of the day
	EndHour         int // slots must end at or before this hour
	SlotLengthHours int
	MinHours        int // minimum charter length the owner accepts
}

// IsBookable reports whether the rule can produce at least one slot
func (r AvailabilityRule) IsBookable() bool {
	return r.SlotLengthHours > 0 && r.StartHour+r.SlotLengthHours <= r.EndHour
}

// Boat represents a charter boat listing
type Boat struct {
	ID          string
	Name        string
	Location    string
	Type        string
	Capacity    int
	Price       float64 // per-slot price, CAD
	Description string
	Amenities   []string
	ImageURL    string

	OwnerID    string
	OwnerName  string
	OwnerEmail string

	// Denormalized review aggregate, recomputed on each submitted review
	Rating       float64
	ReviewsCount int

	Rule AvailabilityRule

	// BookedSlots is an auxiliary marker map date -> booked slot ranges,
	// appended by the reconciler. Non-authoritative: availability is always
	// derived from confirmed bookings, never from this map.
	BookedSlots map[string][]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the given user owns this boat
func (b *Boat) IsOwnedBy(userID string) bool {
	return b.OwnerID == userID
}
