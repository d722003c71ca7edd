package domain

// Default availability rule values, applied when a listing omits them
const (
	DefaultStartHour       = 9
	DefaultEndHour         = 22
	DefaultSlotLengthHours = 4
	DefaultMinHours        = 4
)

// Business validation constants
const (
	MinStars            = 1
	MaxStars            = 5
	MaxReviewTextLength = 2000
	MaxNameLength       = 200
	MinCapacity         = 1
	MaxCapacity         = 200
)

// DefaultBoatName подставляется, когда intent не содержит имени лодки
const DefaultBoatName = "Boat"

// DefaultCurrency валюта всех платежей маркетплейса
const DefaultCurrency = "cad"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
