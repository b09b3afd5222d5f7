// AngelaMos | 2026
// identity.go

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"

	UserIDHeader = "X-User-ID"
)

// Identity reads the caller's user id from the X-User-ID header set by the
// upstream gateway. Requests without the header pass through anonymous; a
// malformed header is rejected.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			core.BadRequest(w, UserIDHeader+" must be a positive integer")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserID(r.Context()); !ok {
			core.JSONError(w, core.UnauthorizedError("missing "+UserIDHeader+" header"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}
