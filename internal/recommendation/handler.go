// AngelaMos | 2026
// handler.go

package recommendation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
	"github.com/carterperez-dev/templates/review-insights/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireUser func(http.Handler) http.Handler,
) {
	r.Route("/recommendations", func(r chi.Router) {
		r.With(requireUser).Post("/", h.Recommend)
		r.Get("/", h.List)
		r.Get("/user/{userID}", h.ListByUser)
	})
}

func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	ranked, err := h.service.Recommend(r.Context(), userID, req.Query, req.Limit)
	if err != nil {
		core.Fail(w, err, "recommendation")
		return
	}

	core.OK(w, ToProductResponseList(ranked))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	minScore := 0.0
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			core.BadRequest(w, "min_score must be a number")
			return
		}
		minScore = v
	}

	recs, err := h.service.List(r.Context(), minScore)
	if err != nil {
		core.Fail(w, err, "recommendation")
		return
	}

	core.OK(w, ToRecommendationResponseList(recs))
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		core.BadRequest(w, "userID must be a positive integer")
		return
	}

	recs, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		core.Fail(w, err, "recommendation")
		return
	}

	core.OK(w, ToRecommendationResponseList(recs))
}
