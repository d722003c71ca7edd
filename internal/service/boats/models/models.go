// Package models модели сервиса каталога лодок
package models

import (
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// CreateBoatRequest данные новой лодки
type CreateBoatRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	ImageURL    string   `json:"imageUrl"`

	OwnerID    string `json:"ownerId"`
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`

	StartHour       *int `json:"startHour"`
	EndHour         *int `json:"endHour"`
	SlotLengthHours *int `json:"slotLengthHours"`
	MinHours        *int `json:"minHours"`
}

// BoatResponse лодка в ответе API
type BoatResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	ImageURL    string   `json:"imageUrl"`

	OwnerID   string `json:"ownerId"`
	OwnerName string `json:"ownerName"`

	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviewsCount"`

	StartHour       int `json:"startHour"`
	EndHour         int `json:"endHour"`
	SlotLengthHours int `json:"slotLengthHours"`
	MinHours        int `json:"minHours"`

	CreatedAt time.Time `json:"createdAt"`
}

// BoatListResponse список лодок каталога
type BoatListResponse struct {
	Boats []*BoatResponse `json:"boats"`
	Total int             `json:"total"`
}

// FromDomainBoat конвертирует domain.Boat в BoatResponse
func FromDomainBoat(b *domain.Boat) *BoatResponse {
	return &BoatResponse{
		ID:              b.ID,
		Name:            b.Name,
		Location:        b.Location,
		Type:            b.Type,
		Capacity:        b.Capacity,
		Price:           b.Price,
		Description:     b.Description,
		Amenities:       b.Amenities,
		ImageURL:        b.ImageURL,
		OwnerID:         b.OwnerID,
		OwnerName:       b.OwnerName,
		Rating:          b.Rating,
		ReviewsCount:    b.ReviewsCount,
		StartHour:       b.Rule.StartHour,
		EndHour:         b.Rule.EndHour,
		SlotLengthHours: b.Rule.SlotLengthHours,
		MinHours:        b.Rule.MinHours,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBoatList конвертирует список domain.Boat в BoatListResponse
func FromDomainBoatList(boats []*domain.Boat) *BoatListResponse {
	result := make([]*BoatResponse, 0, len(boats))
	for _, b := range boats {
		result = append(result, FromDomainBoat(b))
	}
	return &BoatListResponse{
		Boats: result,
		Total: len(result),
	}
}
