package submit_review

import (
	submitReview "github.com/m04kA/BCM-BookingService/internal/usecase/submit_review"
)

// SubmitReviewRequest HTTP request model
type SubmitReviewRequest struct {
	UserName string `json:"userName"`
	Stars    int    `json:"stars"`
	Text     string `json:"text"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitReviewRequest) ToUseCaseRequest(boatID, userID string) submitReview.Request {
	return submitReview.Request{
		BoatID:   boatID,
		UserID:   userID,
		UserName: r.UserName,
		Stars:    r.Stars,
		Text:     r.Text,
	}
}
