// AngelaMos | 2026
// middleware_test.go

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     int64
		wantOK     bool
	}{
		{name: "anonymous", header: "", wantStatus: http.StatusOK},
		{name: "valid id", header: " 42 ", wantStatus: http.StatusOK, wantID: 42, wantOK: true},
		{name: "not a number", header: "alice", wantStatus: http.StatusBadRequest},
		{name: "zero", header: "0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotOK bool
			h := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotOK = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotID != tt.wantID || gotOK != tt.wantOK {
				t.Errorf("GetUserID() = %d, %v; want %d, %v", gotID, gotOK, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestRequireUser(t *testing.T) {
	h := Identity(RequireUser(okHandler()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(UserIDHeader, "7")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("identified status = %d, want 200", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("generated id %q is not a uuid: %v", got, err)
	}
	if captured != got {
		t.Errorf("context id = %q, header id = %q", captured, got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "upstream-123" {
		t.Errorf("preserved id = %q, want upstream-123", got)
	}
}

func TestLogger_PassesStatusThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Use(Logger(logger))
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/9", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestRateLimiter_LocalFallback(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimitConfig{
		Limit:      PerWindow(1, 1, time.Minute),
		BypassFunc: SkipOpsPaths,
	})
	h := rl.Handler(okHandler())

	send := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	if rec := send("/v1/reviews"); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec := send("/v1/reviews")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}

	if rec := send("/healthz"); rec.Code != http.StatusOK {
		t.Errorf("probe status = %d, want 200", rec.Code)
	}
}

func TestKeyByUserAndEndpoint(t *testing.T) {
	h := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(KeyByUserAndEndpoint(r)))
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/reviews/product/15", nil)
	req.Header.Set(UserIDHeader, "3")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	want := "ratelimit:user:3:endpoint:/v1/reviews/product/{id}"
	if got := rec.Body.String(); got != want {
		t.Errorf("key = %q, want %q", got, want)
	}
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(true)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, h := range []string{"X-Content-Type-Options", "X-Frame-Options", "Strict-Transport-Security"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("missing %s", h)
		}
	}

	rec = httptest.NewRecorder()
	SecurityHeaders(false)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set outside production")
	}
}
