// AngelaMos | 2026
// filter.go

package subscription

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
	"github.com/carterperez-dev/templates/review-insights/internal/review"
)

// TierQuery identifies a plan by id or by name. ID wins when both are set.
type TierQuery struct {
	ID       *int64
	Name     string
	Language string
}

// TierFilter selects reviews written by users on a given subscription tier.
//
// The free tier also covers users with no active subscription at all, and
// their reviews are never dropped by the language filter since they have no
// plan language to compare. Every other tier matches only authors actively
// subscribed to that plan, and the language filter applies to all of them.
type TierFilter struct {
	repo       Repository
	resolver   *Resolver
	languages  Languages
	freePlanID int64
}

// NewTierFilter builds a TierFilter. freePlanID, when non-zero, is an id
// that always selects the free tier.
func NewTierFilter(
	repo Repository,
	resolver *Resolver,
	languages Languages,
	freePlanID int64,
) *TierFilter {
	return &TierFilter{
		repo:       repo,
		resolver:   resolver,
		languages:  languages,
		freePlanID: freePlanID,
	}
}

type tierTarget struct {
	free    bool
	planIDs map[int64]struct{}
}

func (t tierTarget) ids() []int64 {
	ids := make([]int64, 0, len(t.planIDs))
	for id := range t.planIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *TierFilter) ReviewsForTier(
	ctx context.Context,
	q TierQuery,
) ([]review.Review, error) {
	ctx, span := core.StartSpan(ctx, "subscription.ReviewsForTier")
	defer span.End()

	lang, err := f.languages.Normalize(q.Language)
	if err != nil {
		return nil, err
	}

	target, err := f.resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	branch := "strict"
	if target.free {
		branch = "free"
	}
	span.SetAttributes(
		attribute.String("tier.branch", branch),
		attribute.String("tier.lang", lang),
	)
	core.TierFilterRequests.WithLabelValues(branch).Inc()

	rows, err := f.repo.TierRows(ctx, TierRowFilter{
		PlanIDs:         target.ids(),
		IncludeUnlinked: target.free,
	})
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	return selectTier(rows, target, lang), nil
}

func (f *TierFilter) resolve(ctx context.Context, q TierQuery) (tierTarget, error) {
	if q.ID != nil {
		return f.resolveID(ctx, *q.ID)
	}

	if strings.TrimSpace(q.Name) == "" {
		return tierTarget{}, fmt.Errorf(
			"provide subscription_id or subscription_name: %w",
			core.ErrInvalidInput,
		)
	}

	code, canonical := f.resolver.Resolve(q.Name)
	if !canonical {
		plan, err := f.repo.FindByCodeOrName(ctx, code, plainName(q.Name), "")
		if err != nil {
			return tierTarget{}, err
		}
		code = NormalizeCode(plan.Code)
		if resolved, ok := f.resolver.Resolve(plan.Code); ok {
			code = resolved
		}
	}

	if code == CodeFree {
		return f.freeTarget(ctx)
	}

	plans, err := f.repo.ListByCode(ctx, code)
	if err != nil {
		return tierTarget{}, err
	}

	target := tierTarget{planIDs: make(map[int64]struct{}, len(plans))}
	for _, p := range plans {
		target.planIDs[p.ID] = struct{}{}
	}
	return target, nil
}

func (f *TierFilter) resolveID(ctx context.Context, id int64) (tierTarget, error) {
	if f.freePlanID != 0 && id == f.freePlanID {
		return f.freeTarget(ctx)
	}

	plan, err := f.repo.GetByID(ctx, id)
	if err != nil {
		return tierTarget{}, err
	}

	if code, _ := f.resolver.Resolve(plan.Code); code == CodeFree {
		return f.freeTarget(ctx)
	}

	return tierTarget{planIDs: map[int64]struct{}{plan.ID: {}}}, nil
}

func (f *TierFilter) freeTarget(ctx context.Context) (tierTarget, error) {
	plans, err := f.repo.ListByCode(ctx, CodeFree)
	if err != nil {
		return tierTarget{}, err
	}

	target := tierTarget{free: true, planIDs: make(map[int64]struct{}, len(plans)+1)}
	for _, p := range plans {
		target.planIDs[p.ID] = struct{}{}
	}
	if f.freePlanID != 0 {
		target.planIDs[f.freePlanID] = struct{}{}
	}
	return target, nil
}

// selectTier applies the tier policy to joined rows, drops duplicate
// reviews and orders the result newest first.
func selectTier(rows []TierRow, target tierTarget, lang string) []review.Review {
	seen := make(map[int64]struct{}, len(rows))
	out := make([]review.Review, 0, len(rows))

	for i := range rows {
		row := &rows[i]
		if !keepRow(row, target, lang) {
			continue
		}
		if _, dup := seen[row.ID]; dup {
			continue
		}
		seen[row.ID] = struct{}{}
		out = append(out, row.Review)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out
}

func keepRow(row *TierRow, target tierTarget, lang string) bool {
	if !row.Linked() {
		return target.free
	}

	if _, ok := target.planIDs[*row.PlanID]; !ok {
		return false
	}

	if lang == "" {
		return true
	}
	return row.PlanLanguage != nil && strings.EqualFold(strings.TrimSpace(*row.PlanLanguage), lang)
}

func plainName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
