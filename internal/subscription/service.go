// AngelaMos | 2026
// service.go

package subscription

import (
	"context"
	"fmt"
	"strings"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
	"github.com/carterperez-dev/templates/review-insights/internal/review"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// Enricher fills in sentiment for reviews stored without it.
type Enricher interface {
	Enrich(reviews []review.Review) []review.Review
}

type Service struct {
	repo      Repository
	resolver  *Resolver
	languages Languages
	tiers     *TierFilter
	enricher  Enricher
}

func NewService(
	repo Repository,
	resolver *Resolver,
	languages Languages,
	freePlanID int64,
	enricher Enricher,
) *Service {
	return &Service{
		repo:      repo,
		resolver:  resolver,
		languages: languages,
		tiers:     NewTierFilter(repo, resolver, languages, freePlanID),
		enricher:  enricher,
	}
}

// Lookup finds one plan by id, or by name or synonym when id is nil. A
// non-empty lang must match the plan's language.
func (s *Service) Lookup(
	ctx context.Context,
	id *int64,
	name, lang string,
) (*Plan, error) {
	lang, err := s.languages.Normalize(lang)
	if err != nil {
		return nil, err
	}

	if id != nil {
		plan, err := s.repo.GetByID(ctx, *id)
		if err != nil {
			return nil, err
		}
		if lang != "" && !strings.EqualFold(strings.TrimSpace(plan.Language), lang) {
			return nil, fmt.Errorf("subscription %d in %s: %w", *id, lang, core.ErrNotFound)
		}
		return plan, nil
	}

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf(
			"provide subscription_id or subscription_name: %w",
			core.ErrInvalidInput,
		)
	}

	code, _ := s.resolver.Resolve(name)
	return s.repo.FindByCodeOrName(ctx, code, plainName(name), lang)
}

func (s *Service) ListPlans(
	ctx context.Context,
	lang string,
	offset, limit int,
) ([]Plan, error) {
	lang, err := s.languages.Normalize(lang)
	if err != nil {
		return nil, err
	}

	if offset < 0 {
		return nil, fmt.Errorf("offset must not be negative: %w", core.ErrInvalidInput)
	}

	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	return s.repo.ListPlans(ctx, lang, offset, limit)
}

func (s *Service) Resolve(nameOrCode string) (string, bool) {
	return s.resolver.Resolve(nameOrCode)
}

// Stats counts active subscriptions per plan code.
func (s *Service) Stats(ctx context.Context, lang string) ([]PlanCount, error) {
	lang, err := s.languages.Normalize(lang)
	if err != nil {
		return nil, err
	}
	return s.repo.CountActiveByPlan(ctx, lang)
}

func (s *Service) ReviewsForTier(
	ctx context.Context,
	q TierQuery,
) ([]review.Review, error) {
	reviews, err := s.tiers.ReviewsForTier(ctx, q)
	if err != nil {
		return nil, err
	}
	if s.enricher != nil {
		reviews = s.enricher.Enrich(reviews)
	}
	return reviews, nil
}
