// AngelaMos | 2026
// repository.go

package recommendation

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
)

type Repository interface {
	// ReplaceForUser swaps the user's previous batch for recs in one
	// transaction and fills in their ids and timestamps.
	ReplaceForUser(ctx context.Context, userID int64, recs []Recommendation) error
	ListByUser(ctx context.Context, userID int64) ([]Recommendation, error)
	ListMinScore(ctx context.Context, minScore float64) ([]Recommendation, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ReplaceForUser(
	ctx context.Context,
	userID int64,
	recs []Recommendation,
) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM recommendations WHERE user_id = $1`, userID,
		); err != nil {
			return fmt.Errorf("delete previous: %w", err)
		}

		query := `
			INSERT INTO recommendations (user_id, product_id, score)
			VALUES ($1, $2, $3)
			RETURNING id, recommended_at`

		for i := range recs {
			recs[i].UserID = userID
			err := tx.QueryRowxContext(ctx, query,
				userID,
				recs[i].ProductID,
				recs[i].Score,
			).Scan(&recs[i].ID, &recs[i].RecommendedAt)
			if err != nil {
				if core.IsForeignKeyError(err) {
					return fmt.Errorf("insert product %d: %w", recs[i].ProductID, core.ErrInvalidInput)
				}
				return fmt.Errorf("insert product %d: %w", recs[i].ProductID, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("replace recommendations: %w", err)
	}

	return nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Recommendation, error) {
	query := `
		SELECT id, user_id, product_id, score, recommended_at
		FROM recommendations
		WHERE user_id = $1
		ORDER BY score DESC, id`

	var recs []Recommendation
	if err := r.db.SelectContext(ctx, &recs, query, userID); err != nil {
		return nil, fmt.Errorf("list recommendations by user: %w", err)
	}

	return recs, nil
}

func (r *repository) ListMinScore(
	ctx context.Context,
	minScore float64,
) ([]Recommendation, error) {
	query := `
		SELECT id, user_id, product_id, score, recommended_at
		FROM recommendations
		WHERE score >= $1
		ORDER BY score DESC, id`

	var recs []Recommendation
	if err := r.db.SelectContext(ctx, &recs, query, minScore); err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	return recs, nil
}
