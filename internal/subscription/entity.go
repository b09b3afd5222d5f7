// AngelaMos | 2026
// entity.go

package subscription

import (
	"github.com/carterperez-dev/templates/review-insights/internal/review"
)

type Plan struct {
	ID           int64   `db:"id"`
	Code         string  `db:"code"`
	Language     string  `db:"language"`
	Name         string  `db:"name"`
	Price        int64   `db:"price"`
	DurationDays int     `db:"duration_days"`
	Description  *string `db:"description"`
}

// TierRow is a review joined with its author's active plan. The plan
// columns are nil when the author has no active subscription.
type TierRow struct {
	review.Review
	PlanID       *int64  `db:"plan_id"`
	PlanCode     *string `db:"plan_code"`
	PlanLanguage *string `db:"plan_language"`
}

func (r *TierRow) Linked() bool {
	return r.PlanID != nil
}

type PlanCount struct {
	Code   string `db:"code"`
	Active int64  `db:"active"`
}
