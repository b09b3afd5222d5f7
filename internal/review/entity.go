// AngelaMos | 2026
// entity.go

package review

import (
	"time"

	"github.com/carterperez-dev/templates/review-insights/internal/sentiment"
)

type Review struct {
	ID             int64     `db:"id"`
	ProductID      int64     `db:"product_id"`
	UserID         int64     `db:"user_id"`
	Text           string    `db:"text"`
	SentimentLabel *string   `db:"sentiment_label"`
	PositiveScore  *float64  `db:"positive_score"`
	NegativeScore  *float64  `db:"negative_score"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r *Review) HasSentiment() bool {
	return r.SentimentLabel != nil && r.PositiveScore != nil && r.NegativeScore != nil
}

func (r *Review) SetSentiment(res sentiment.Result) {
	label := string(res.Label)
	pos, neg := res.PositiveScore, res.NegativeScore
	r.SentimentLabel = &label
	r.PositiveScore = &pos
	r.NegativeScore = &neg
}

// Sentiment returns the stored classification. ok is false when the row
// predates classification.
func (r *Review) Sentiment() (sentiment.Result, bool) {
	if !r.HasSentiment() {
		return sentiment.Result{}, false
	}
	return sentiment.Result{
		Label:         sentiment.Label(*r.SentimentLabel),
		PositiveScore: *r.PositiveScore,
		NegativeScore: *r.NegativeScore,
	}, true
}
