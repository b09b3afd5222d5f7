// AngelaMos | 2026
// repository.go

package review

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
)

type Repository interface {
	Create(ctx context.Context, review *Review) error
	ListByProduct(ctx context.Context, productID int64) ([]Review, error)
	ListByUser(ctx context.Context, userID int64) ([]Review, error)
	// ListBySentiment returns rows stored with label plus rows not yet
	// classified, so callers can classify those before filtering.
	ListBySentiment(ctx context.Context, label string) ([]Review, error)
	// ListAll is ordered by product then id.
	ListAll(ctx context.Context) ([]Review, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const reviewColumns = `id, product_id, user_id, text, sentiment_label,
		       positive_score, negative_score, created_at`

func (r *repository) Create(ctx context.Context, review *Review) error {
	query := `
		INSERT INTO reviews (product_id, user_id, text, sentiment_label,
		                     positive_score, negative_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		review.ProductID,
		review.UserID,
		review.Text,
		review.SentimentLabel,
		review.PositiveScore,
		review.NegativeScore,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if core.IsForeignKeyError(err) {
			return fmt.Errorf("create review: unknown product or user: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *repository) ListByProduct(
	ctx context.Context,
	productID int64,
) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC`

	var reviews []Review
	if err := r.db.SelectContext(ctx, &reviews, query, productID); err != nil {
		return nil, fmt.Errorf("list reviews by product: %w", err)
	}

	return reviews, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	var reviews []Review
	if err := r.db.SelectContext(ctx, &reviews, query, userID); err != nil {
		return nil, fmt.Errorf("list reviews by user: %w", err)
	}

	return reviews, nil
}

func (r *repository) ListBySentiment(
	ctx context.Context,
	label string,
) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE sentiment_label = $1 OR sentiment_label IS NULL
		ORDER BY created_at DESC, id DESC`

	var reviews []Review
	if err := r.db.SelectContext(ctx, &reviews, query, label); err != nil {
		return nil, fmt.Errorf("list reviews by sentiment: %w", err)
	}

	return reviews, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY product_id, id`

	var reviews []Review
	if err := r.db.SelectContext(ctx, &reviews, query); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}
