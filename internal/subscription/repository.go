// AngelaMos | 2026
// repository.go

package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
)

// TierRowFilter narrows the joined rows to authors on one of PlanIDs and,
// when IncludeUnlinked is set, authors without any active subscription.
type TierRowFilter struct {
	PlanIDs         []int64
	IncludeUnlinked bool
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Plan, error)
	ListByCode(ctx context.Context, code string) ([]Plan, error)
	// FindByCodeOrName prefers a code match over a display-name match. An
	// empty lang matches every language.
	FindByCodeOrName(ctx context.Context, code, name, lang string) (*Plan, error)
	ListPlans(ctx context.Context, lang string, offset, limit int) ([]Plan, error)
	TierRows(ctx context.Context, filter TierRowFilter) ([]TierRow, error)
	CountActiveByPlan(ctx context.Context, lang string) ([]PlanCount, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const planColumns = `id, code, language, name, price, duration_days, description`

func (r *repository) GetByID(ctx context.Context, id int64) (*Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM subscriptions
		WHERE id = $1`

	var plan Plan
	err := r.db.GetContext(ctx, &plan, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get subscription: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}

	return &plan, nil
}

func (r *repository) ListByCode(ctx context.Context, code string) ([]Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM subscriptions
		WHERE lower(btrim(code)) = $1
		ORDER BY id`

	var plans []Plan
	if err := r.db.SelectContext(ctx, &plans, query, code); err != nil {
		return nil, fmt.Errorf("list subscriptions by code: %w", err)
	}

	return plans, nil
}

func (r *repository) FindByCodeOrName(
	ctx context.Context,
	code, name, lang string,
) (*Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM subscriptions
		WHERE (lower(btrim(code)) = $1 OR lower(btrim(name)) = $2)
		  AND ($3::text = '' OR lower(language) = $3)
		ORDER BY (lower(btrim(code)) = $1) DESC, id
		LIMIT 1`

	var plan Plan
	err := r.db.GetContext(ctx, &plan, query, code, name, lang)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find subscription: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find subscription: %w", err)
	}

	return &plan, nil
}

func (r *repository) ListPlans(
	ctx context.Context,
	lang string,
	offset, limit int,
) ([]Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM subscriptions
		WHERE ($1::text = '' OR lower(language) = $1)
		ORDER BY id
		LIMIT $2 OFFSET $3`

	var plans []Plan
	if err := r.db.SelectContext(ctx, &plans, query, lang, limit, offset); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	return plans, nil
}

func (r *repository) TierRows(
	ctx context.Context,
	filter TierRowFilter,
) ([]TierRow, error) {
	query := `
		SELECT r.id, r.product_id, r.user_id, r.text, r.sentiment_label,
		       r.positive_score, r.negative_score, r.created_at,
		       s.id AS plan_id, s.code AS plan_code, s.language AS plan_language
		FROM reviews r
		LEFT JOIN user_subscriptions us
		       ON us.user_id = r.user_id AND us.is_active
		LEFT JOIN subscriptions s
		       ON s.id = us.subscription_id
		WHERE s.id = ANY($1::bigint[])
		   OR ($2::boolean AND us.id IS NULL)
		ORDER BY r.created_at DESC, r.id DESC`

	planIDs := filter.PlanIDs
	if planIDs == nil {
		planIDs = []int64{}
	}

	var rows []TierRow
	if err := r.db.SelectContext(ctx, &rows, query, planIDs, filter.IncludeUnlinked); err != nil {
		return nil, fmt.Errorf("list tier reviews: %w", err)
	}

	return rows, nil
}

func (r *repository) CountActiveByPlan(
	ctx context.Context,
	lang string,
) ([]PlanCount, error) {
	query := `
		SELECT s.code, COUNT(us.id) AS active
		FROM subscriptions s
		JOIN user_subscriptions us ON us.subscription_id = s.id
		WHERE us.is_active
		  AND ($1::text = '' OR lower(s.language) = $1)
		GROUP BY s.code
		ORDER BY s.code`

	var counts []PlanCount
	if err := r.db.SelectContext(ctx, &counts, query, lang); err != nil {
		return nil, fmt.Errorf("count active subscriptions: %w", err)
	}

	return counts, nil
}
