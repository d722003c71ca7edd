package domain

import "time"

// Review represents a passenger's rating of a boat. One review per
// (boat, user); submission is gated on a confirmed booking for the boat.
type Review struct {
	ID       string
	BoatID   string
	BoatName string
	OwnerID  string
	UserID   string
	UserName string
	Stars    int // 1..5
	Text     string

	CreatedAt time.Time
}

// ValidStars reports whether the star value is within the accepted range
func ValidStars(stars int) bool {
	return stars >= MinStars && stars <= MaxStars
}

// RoundRating rounds a raw average to one decimal, the precision stored on
// the boat listing.
func RoundRating(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	avg := sum / float64(count)
	return float64(int(avg*10+0.5)) / 10
}
