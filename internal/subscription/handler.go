// AngelaMos | 2026
// handler.go

package subscription

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
	"github.com/carterperez-dev/templates/review-insights/internal/review"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/subscriptions", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/lookup", h.Lookup)
		r.Get("/resolve", h.Resolve)
		r.Get("/reviews", h.Reviews)
		r.Get("/stats/active-by-plan", h.Stats)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	offset, ok := intParam(w, q, "offset")
	if !ok {
		return
	}
	limit, ok := intParam(w, q, "limit")
	if !ok {
		return
	}

	plans, err := h.service.ListPlans(r.Context(), q.Get("lang"), offset, limit)
	if err != nil {
		core.Fail(w, err, "subscription")
		return
	}

	core.OK(w, ToPlanResponseList(plans))
}

func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	id, ok := subscriptionID(w, q)
	if !ok {
		return
	}

	plan, err := h.service.Lookup(r.Context(), id, q.Get("subscription_name"), q.Get("lang"))
	if err != nil {
		core.Fail(w, err, "subscription")
		return
	}

	core.OK(w, ToPlanResponse(plan))
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	code, canonical := h.service.Resolve(name)

	core.OK(w, ResolveResponse{Input: name, Code: code, Canonical: canonical})
}

func (h *Handler) Reviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	id, ok := subscriptionID(w, q)
	if !ok {
		return
	}

	reviews, err := h.service.ReviewsForTier(r.Context(), TierQuery{
		ID:       id,
		Name:     q.Get("subscription_name"),
		Language: q.Get("lang"),
	})
	if err != nil {
		core.Fail(w, err, "subscription")
		return
	}

	core.OK(w, review.ToReviewResponseList(reviews))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Stats(r.Context(), r.URL.Query().Get("lang"))
	if err != nil {
		core.Fail(w, err, "subscription")
		return
	}

	core.OK(w, ToPlanCountResponseList(counts))
}

func subscriptionID(w http.ResponseWriter, q url.Values) (*int64, bool) {
	raw := q.Get("subscription_id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		core.BadRequest(w, "subscription_id must be an integer")
		return nil, false
	}
	return &id, true
}

func intParam(w http.ResponseWriter, q url.Values, key string) (int, bool) {
	raw := q.Get(key)
	if raw == "" {
		return 0, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		core.BadRequest(w, key+" must be an integer")
		return 0, false
	}
	return v, true
}
