package app

import (
	"context"
	"testing"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/store/memory"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
)

func TestEventService_Active(t *testing.T) {
	t.Parallel()

	store := memory.NewStore[event.Event]("event")
	svc := NewEventService(store, fixedClock(fridayNoon), testPaging, discardLogger())
	ctx := context.Background()

	h := time.Hour
	seed := []event.Event{
		{Title: "Ended", StartsAt: fridayNoon.Add(-48 * h), EndsAt: fridayNoon.Add(-47 * h), Published: true},
		{Title: "Next week", StartsAt: fridayNoon.Add(168 * h), EndsAt: fridayNoon.Add(170 * h), Published: true},
		{Title: "Running", StartsAt: fridayNoon.Add(-h), EndsAt: fridayNoon.Add(h), Published: true},
		{Title: "Draft", StartsAt: fridayNoon.Add(24 * h), EndsAt: fridayNoon.Add(25 * h), Published: false},
		{Title: "Tomorrow", StartsAt: fridayNoon.Add(24 * h), EndsAt: fridayNoon.Add(26 * h), Published: true},
	}
	for _, e := range seed {
		if _, err := svc.Create(ctx, &e); err != nil {
			t.Fatalf("Create(%q) error = %v", e.Title, err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all", 0, []string{"Running", "Tomorrow", "Next week"}},
		{"limited", 2, []string{"Running", "Tomorrow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.Active(ctx, tt.limit)
			if err != nil {
				t.Fatalf("Active() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Active() len = %d, want %d", len(got), len(tt.want))
			}
			for i, title := range tt.want {
				if got[i].Title != title {
					t.Errorf("Active()[%d] = %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}
}
