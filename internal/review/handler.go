// AngelaMos | 2026
// handler.go

package review

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/carterperez-dev/templates/review-insights/internal/core"
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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/product/{productID}", h.ListByProduct)
		r.Get("/user/{userID}", h.ListByUser)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	review, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.Fail(w, err, "review")
		return
	}

	core.Created(w, ToReviewResponse(review))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.List(r.Context(), r.URL.Query().Get("sentiment"))
	if err != nil {
		core.Fail(w, err, "review")
		return
	}

	core.OK(w, ToReviewResponseList(reviews))
}

func (h *Handler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}

	reviews, err := h.service.ListByProduct(r.Context(), productID)
	if err != nil {
		core.Fail(w, err, "review")
		return
	}

	core.OK(w, ToReviewResponseList(reviews))
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	reviews, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		core.Fail(w, err, "review")
		return
	}

	core.OK(w, ToReviewResponseList(reviews))
}

func pathID(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		core.BadRequest(w, key+" must be a positive integer")
		return 0, false
	}
	return id, true
}
