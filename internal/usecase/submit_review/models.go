package submit_review

import (
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
)

// Request данные нового отзыва
type Request struct {
	BoatID   string
	UserID   string
	UserName string
	Stars    int
	Text     string
}

// Response созданный отзыв и пересчитанный рейтинг лодки
type Response struct {
	ReviewID     string    `json:"reviewId"`
	BoatID       string    `json:"boatId"`
	Stars        int       `json:"stars"`
	Rating       float64   `json:"rating"`
	ReviewsCount int       `json:"reviewsCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toResponse(review *domain.Review, rating float64, reviewsCount int) *Response {
	return &Response{
		ReviewID:     review.ID,
		BoatID:       review.BoatID,
		Stars:        review.Stars,
		Rating:       rating,
		ReviewsCount: reviewsCount,
		CreatedAt:    review.CreatedAt,
	}
}
