package event

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
)

var start = time.Date(2025, 8, 9, 15, 0, 0, 0, time.UTC)

func validEvent() Event {
	return Event{Title: "Jazz Night", StartsAt: start, EndsAt: start.Add(3 * time.Hour)}
}

func TestEvent_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Event)
		field  string
	}{
		{name: "blank title", mutate: func(e *Event) { e.Title = "  " }, field: "title"},
		{name: "missing start", mutate: func(e *Event) { e.StartsAt = time.Time{} }, field: "starts_at"},
		{name: "missing end", mutate: func(e *Event) { e.EndsAt = time.Time{} }, field: "ends_at"},
		{name: "end before start", mutate: func(e *Event) { e.EndsAt = start.Add(-time.Minute) }, field: "ends_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := validEvent()
			tt.mutate(&e)
			err := e.Validate()

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestEvent_Validate_ZeroLengthAllowed(t *testing.T) {
	t.Parallel()

	e := validEvent()
	e.EndsAt = e.StartsAt
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestEvent_StatusAt(t *testing.T) {
	t.Parallel()

	e := validEvent()
	if got := e.StatusAt(start.Add(-time.Hour)); got != civiltime.EventUpcoming {
		t.Errorf("StatusAt(before) = %q, want upcoming", got)
	}
	if got := e.StatusAt(start.Add(time.Hour)); got != civiltime.EventCurrent {
		t.Errorf("StatusAt(during) = %q, want current", got)
	}
	if got := e.StatusAt(start.Add(4 * time.Hour)); got != civiltime.EventEnded {
		t.Errorf("StatusAt(after) = %q, want ended", got)
	}
}
