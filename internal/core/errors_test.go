// AngelaMos | 2026
// errors_test.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid input keeps message",
			err:        fmt.Errorf("lang must be one of 'uk': %w", ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "lang must be one of 'uk'",
		},
		{
			name:       "not found names resource",
			err:        fmt.Errorf("get subscription: %w", ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "subscription not found",
		},
		{
			name:       "unauthorized",
			err:        fmt.Errorf("missing header: %w", ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "missing header",
		},
		{
			name:       "duplicate",
			err:        fmt.Errorf("insert: %w", ErrDuplicateKey),
			wantStatus: http.StatusConflict,
			wantMsg:    "subscription already exists",
		},
		{
			name:       "unknown hides detail",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToAppError(tt.err, "subscription")
			if got.Status != tt.wantStatus || got.Message != tt.wantMsg {
				t.Errorf("ToAppError() = (%d, %q), want (%d, %q)",
					got.Status, got.Message, tt.wantStatus, tt.wantMsg)
			}
		})
	}
}

func TestFail_WritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, fmt.Errorf("find: %w", ErrNotFound), "review")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error == nil || body.Error.Code != "NOT_FOUND" {
		t.Errorf("body = %+v", body)
	}
}
