// AngelaMos | 2026
// service.go

package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
	"github.com/carterperez-dev/templates/review-insights/internal/sentiment"
)

type Classifier interface {
	Classify(text string) sentiment.Result
}

type Service struct {
	repo       Repository
	classifier Classifier
}

func NewService(repo Repository, classifier Classifier) *Service {
	return &Service{repo: repo, classifier: classifier}
}

// Create classifies the review text and stores it together with the result.
func (s *Service) Create(
	ctx context.Context,
	req CreateReviewRequest,
) (*Review, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("text must not be blank: %w", core.ErrInvalidInput)
	}

	review := &Review{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		Text:      text,
	}
	review.SetSentiment(s.classify(text))

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *Service) ListByProduct(
	ctx context.Context,
	productID int64,
) ([]Review, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.Enrich(reviews), nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Review, error) {
	reviews, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Enrich(reviews), nil
}

// List returns every review, narrowed to one label when label is non-empty.
func (s *Service) List(ctx context.Context, label string) ([]Review, error) {
	if label == "" {
		reviews, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return s.Enrich(reviews), nil
	}

	want := sentiment.Label(strings.ToLower(strings.TrimSpace(label)))
	if !want.Valid() {
		return nil, fmt.Errorf(
			"sentiment must be one of positive, negative, neutral: %w",
			core.ErrInvalidInput,
		)
	}

	reviews, err := s.repo.ListBySentiment(ctx, string(want))
	if err != nil {
		return nil, err
	}

	out := make([]Review, 0, len(reviews))
	for _, r := range s.Enrich(reviews) {
		if *r.SentimentLabel == string(want) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Enrich fills in sentiment for rows stored without it. The rows are not
// written back.
func (s *Service) Enrich(reviews []Review) []Review {
	for i := range reviews {
		if !reviews[i].HasSentiment() {
			reviews[i].SetSentiment(s.classify(reviews[i].Text))
		}
	}
	return reviews
}

func (s *Service) classify(text string) sentiment.Result {
	res := s.classifier.Classify(text)
	core.SentimentClassifications.WithLabelValues(string(res.Label)).Inc()
	return res
}
