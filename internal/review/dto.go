// AngelaMos | 2026
// dto.go

package review

import (
	"time"
)

type CreateReviewRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	UserID    int64  `json:"user_id"    validate:"required,gt=0"`
	Text      string `json:"text"       validate:"required,min=1,max=5000"`
}

type ReviewResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	UserID        int64     `json:"user_id"`
	Text          string    `json:"text"`
	Sentiment     string    `json:"sentiment"`
	PositiveScore float64   `json:"positive_score"`
	NegativeScore float64   `json:"negative_score"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToReviewResponse(r *Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
	if res, ok := r.Sentiment(); ok {
		resp.Sentiment = string(res.Label)
		resp.PositiveScore = res.PositiveScore
		resp.NegativeScore = res.NegativeScore
	}
	return resp
}

func ToReviewResponseList(reviews []Review) []ReviewResponse {
	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, ToReviewResponse(&reviews[i]))
	}
	return responses
}
