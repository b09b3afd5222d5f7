// AngelaMos | 2026
// entity.go

package recommendation

import (
	"time"
)

type Recommendation struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	ProductID     int64     `db:"product_id"`
	Score         float64   `db:"score"`
	RecommendedAt time.Time `db:"recommended_at"`
}
