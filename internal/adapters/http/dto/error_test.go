package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
)

func civilTimeErr() error {
	_, err := civiltime.ParseTimeOfDay("25:00")
	return err
}

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrNotFound maps to 404",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "ErrValidation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"title": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrConflict maps to 409",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
		},
		{
			name:       "ErrUnauthorized maps to 401",
			err:        domain.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantTitle:  "Unauthorized",
		},
		{
			name:       "ErrForbidden maps to 403",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantTitle:  "Forbidden",
		},
		{
			name:       "ErrUnavailable maps to 502",
			err:        domain.ErrUnavailable,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        fmt.Errorf("listing events: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantTitle:  "Gateway Timeout",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "civil time parse error maps to 400",
			err:        civilTimeErr(),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "wrapped ErrNotFound preserves mapping",
			err:        fmt.Errorf("fetching event: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/events/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
	err := domain.ErrNotFound

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/events" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/events")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"title":       "is required",
		"description": "is required",
		"ends_at":     "must not be before starts_at",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}

	// Verify sorted by location.
	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}

	// Verify location format.
	for _, detail := range got.Errors {
		if len(detail.Location) < 6 || detail.Location[:5] != "body." {
			t.Errorf("Location %q does not start with %q", detail.Location, "body.")
		}
	}
}

func TestNewErrorResponse_InternalDetailWithheld(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/stories", nil)
	got := dto.NewErrorResponse(r, errors.New(`pq: relation "story" does not exist`))

	if got.Status != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want 500", got.Status)
	}
	if got.Detail != "" {
		t.Errorf("Detail = %q, want empty for 500", got.Detail)
	}
}

func TestNewErrorResponse_QueryLocation(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{"day": "must be 0-6 or a day name"}}
	r := httptest.NewRequest(http.MethodGet, "/api/v1/hours?day=funday", nil)

	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 1 || got.Errors[0].Location != "query.day" {
		t.Errorf("Errors = %+v, want query.day", got.Errors)
	}
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/events/1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestWriteErrorResponse_ContentType(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/events/42", nil)

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	ct := w.Header().Get("Content-Type")
	if ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestWriteErrorResponse_StatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", &domain.ValidationError{Fields: map[string]string{"x": "y"}}, http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)

			dto.WriteErrorResponse(w, r, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status code = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestWriteErrorResponse_ValidJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)

	verr := &domain.ValidationError{Fields: map[string]string{
		"title": "is required",
	}}
	dto.WriteErrorResponse(w, r, verr)

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if resp.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", resp.Status, http.StatusBadRequest)
	}
	if resp.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", resp.Type, "about:blank")
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Location != "body.title" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "body.title")
	}
	if resp.Errors[0].Message != "is required" {
		t.Errorf("Errors[0].Message = %q, want %q", resp.Errors[0].Message, "is required")
	}
}
