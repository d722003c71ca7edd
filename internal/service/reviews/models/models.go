// Package models модели сервиса отзывов
package models

import (
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// ReviewResponse отзыв в ответе API
type ReviewResponse struct {
	ID        string    `json:"id"`
	BoatID    string    `json:"boatId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Stars     int       `json:"stars"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse отзывы лодки с её агрегированным рейтингом
type ReviewListResponse struct {
	Reviews      []*ReviewResponse `json:"reviews"`
	Total        int               `json:"total"`
	Rating       float64           `json:"rating"`
	ReviewsCount int               `json:"reviewsCount"`
}

// FromDomainReview конвертирует domain.Review в ReviewResponse
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		BoatID:    r.BoatID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Stars:     r.Stars,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список отзывов с рейтингом лодки
func FromDomainReviewList(reviews []*domain.Review, boat *domain.Boat) *ReviewListResponse {
	result := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, FromDomainReview(r))
	}
	return &ReviewListResponse{
		Reviews:      result,
		Total:        len(result),
		Rating:       boat.Rating,
		ReviewsCount: boat.ReviewsCount,
	}
}
