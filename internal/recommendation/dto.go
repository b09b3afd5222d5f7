// AngelaMos | 2026
// dto.go

package recommendation

import (
	"time"

	"github.com/carterperez-dev/templates/review-insights/internal/sentiment"
)

type RecommendRequest struct {
	Query string `json:"query" validate:"required,min=1,max=500"`
	Limit int    `json:"limit" validate:"omitempty,min=1"`
}

type ProductResponse struct {
	ProductID        int64   `json:"product_id"`
	Name             string  `json:"name"`
	SentimentScore   float64 `json:"sentiment_score"`
	RelevancePercent float64 `json:"relevance_percent"`
	Score            float64 `json:"score"`
}

type RecommendationResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	ProductID     int64     `json:"product_id"`
	Score         float64   `json:"score"`
	RecommendedAt time.Time `json:"recommended_at"`
}

func ToProductResponse(r Ranked) ProductResponse {
	return ProductResponse{
		ProductID:        r.Candidate.ProductID,
		Name:             r.Candidate.Name,
		SentimentScore:   sentiment.Round2(r.Sentiment),
		RelevancePercent: sentiment.Round2(r.Relevance * 100),
		Score:            sentiment.Round2(r.Score),
	}
}

func ToProductResponseList(ranked []Ranked) []ProductResponse {
	out := make([]ProductResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, ToProductResponse(r))
	}
	return out
}

func ToRecommendationResponseList(recs []Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationResponse(r))
	}
	return out
}
