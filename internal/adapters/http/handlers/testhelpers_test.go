package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// fridayNoon is 2025-08-15 12:00 in Toronto (EDT, UTC-4).
var fridayNoon = time.Date(2025, 8, 15, 16, 0, 0, 0, time.UTC)

func newConverter(t *testing.T) *civiltime.Converter {
	t.Helper()
	c, err := civiltime.NewConverter("America/Toronto", civiltime.WithClock(func() time.Time { return fridayNoon }))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	return c
}

func testMeta(id int64) domain.Meta {
	return domain.Meta{ID: id, CreatedAt: testTime, UpdatedAt: testTime}
}

func validEvent() event.Event {
	return event.Event{
		Meta:      testMeta(1),
		Title:     "Jazz night",
		StartsAt:  time.Date(2025, 8, 20, 23, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2025, 8, 21, 2, 0, 0, 0, time.UTC),
		Published: true,
	}
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asAdmin marks the request as authenticated, as RequireAdmin would.
func asAdmin(r *http.Request) *http.Request {
	p := &ports.Principal{AdminID: 1, Email: "owner@example.com", Role: admin.RoleOwner}
	return r.WithContext(middleware.WithPrincipal(r.Context(), p))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
