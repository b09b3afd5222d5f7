// AngelaMos | 2026
// service.go

package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/review-insights/internal/catalog"
	"github.com/carterperez-dev/templates/review-insights/internal/core"
	"github.com/carterperez-dev/templates/review-insights/internal/review"
)

type ReviewSource interface {
	ListAll(ctx context.Context) ([]review.Review, error)
}

type ProductSource interface {
	Products(ctx context.Context) map[int64]catalog.Product
}

type Service struct {
	repo     Repository
	reviews  ReviewSource
	products ProductSource
	ranker   *Ranker
	maxLimit int
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	reviews ReviewSource,
	products ProductSource,
	ranker *Ranker,
	maxLimit int,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		reviews:  reviews,
		products: products,
		ranker:   ranker,
		maxLimit: maxLimit,
		logger:   logger,
	}
}

// Recommend ranks every reviewed product against q and stores the result as
// the user's current recommendations. Failing reads of reviews or product
// metadata shrink the candidate pool instead of failing the call. An empty
// ranking leaves the previous batch in place.
func (s *Service) Recommend(
	ctx context.Context,
	userID int64,
	q string,
	limit int,
) ([]Ranked, error) {
	ctx, span := core.StartSpan(ctx, "recommendation.Recommend",
		attribute.Int64("user.id", userID),
		attribute.Int("limit", limit),
	)
	defer span.End()

	if userID <= 0 {
		return nil, fmt.Errorf("user id must be positive: %w", core.ErrInvalidInput)
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}

	candidates := s.candidates(ctx)
	core.RankingCandidates.Observe(float64(len(candidates)))

	ranked := s.ranker.Rank(candidates, q, limit)
	span.SetAttributes(attribute.Int("ranked", len(ranked)))

	if len(ranked) == 0 {
		core.RankingRuns.WithLabelValues("empty").Inc()
		return ranked, nil
	}

	recs := make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		recs = append(recs, Recommendation{
			ProductID: r.Candidate.ProductID,
			Score:     r.Score,
		})
	}

	if err := s.repo.ReplaceForUser(ctx, userID, recs); err != nil {
		core.SetSpanError(ctx, err)
		core.RankingRuns.WithLabelValues("error").Inc()
		return nil, err
	}

	core.RankingRuns.WithLabelValues("ok").Inc()
	return ranked, nil
}

func (s *Service) candidates(ctx context.Context) []Candidate {
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "review store unavailable, ranking without reviews",
			"error", err,
		)
		core.AddSpanEvent(ctx, "reviews.unavailable")
		return nil
	}
	if len(reviews) == 0 {
		return nil
	}

	products := s.products.Products(ctx)

	order := make([]int64, 0)
	grouped := make(map[int64][]string)
	for _, r := range reviews {
		if _, seen := grouped[r.ProductID]; !seen {
			order = append(order, r.ProductID)
		}
		grouped[r.ProductID] = append(grouped[r.ProductID], r.Text)
	}

	candidates := make([]Candidate, 0, len(order))
	for _, id := range order {
		c := Candidate{
			ProductID: id,
			Name:      "Product " + strconv.FormatInt(id, 10),
			Category:  "unknown",
			Reviews:   grouped[id],
		}
		if p, ok := products[id]; ok {
			c.Name = p.Name
			c.Category = p.Category
			c.Description = p.Description
		}
		candidates = append(candidates, c)
	}

	return candidates
}

func (s *Service) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Recommendation, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) List(
	ctx context.Context,
	minScore float64,
) ([]Recommendation, error) {
	return s.repo.ListMinScore(ctx, minScore)
}
