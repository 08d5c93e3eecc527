package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/store/memory"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
)

func newHoursService(t *testing.T, now time.Time) *HoursService {
	t.Helper()
	store := memory.NewStore[hours.OperationHours](hours.Kind)
	return NewHoursService(store, newTestConverter(t, now), testPaging, discardLogger())
}

// utcHours builds an entry from UTC open/close times.
func utcHours(day time.Weekday, open, closing string) hours.OperationHours {
	return hours.OperationHours{DayOfWeek: day, OpenTime: open, CloseTime: closing, Enabled: true}
}

func TestHoursService_CreateRejectsSecondEntryForDay(t *testing.T) {
	t.Parallel()
	svc := newHoursService(t, fridayNoon)
	ctx := context.Background()

	first := utcHours(time.Friday, "15:00", "02:00")
	if _, err := svc.Create(ctx, &first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := utcHours(time.Friday, "16:00", "03:00")
	if _, err := svc.Create(ctx, &second); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Create(duplicate day) error = %v, want ErrConflict", err)
	}

	// Updating the existing entry for the same day is allowed.
	first.OpenTime = "14:00"
	if _, err := svc.Update(ctx, 1, &first); err != nil {
		t.Errorf("Update(same day) error = %v", err)
	}
}

func TestHoursService_ReplaceWeek(t *testing.T) {
	t.Parallel()
	svc := newHoursService(t, fridayNoon)
	ctx := context.Background()

	existing := utcHours(time.Monday, "15:00", "23:00")
	if _, err := svc.Create(ctx, &existing); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	week := []hours.OperationHours{
		utcHours(time.Monday, "16:00", "01:00"),
		utcHours(time.Tuesday, "16:00", "01:00"),
		utcHours(time.Tuesday, "17:00", "01:00"),
		{DayOfWeek: time.Wednesday, OpenTime: "25:00", CloseTime: "01:00"},
	}

	res, err := svc.ReplaceWeek(ctx, week)
	if err != nil {
		t.Fatalf("ReplaceWeek() error = %v", err)
	}
	if len(res.Saved) != 2 {
		t.Errorf("Saved = %d, want 2", len(res.Saved))
	}

	failed := map[int]bool{}
	for _, e := range res.Errors {
		failed[e.Index] = true
		if !errors.Is(e.Err, domain.ErrValidation) {
			t.Errorf("Errors[%d] = %v, want ErrValidation", e.Index, e.Err)
		}
	}
	if !failed[2] || !failed[3] || len(failed) != 2 {
		t.Errorf("failed indexes = %v, want {2, 3}", failed)
	}

	page, err := svc.List(ctx, domain.ListParams{Filter: dayFilter(time.Monday)})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("Monday entries = %d, want 1 (upserted)", page.Total)
	}
	if got := page.Items[0].OpenTime; got != "16:00" {
		t.Errorf("Monday OpenTime = %q, want %q", got, "16:00")
	}
}

func TestHoursService_Status(t *testing.T) {
	t.Parallel()

	// All stored times are UTC; during EDT civil = UTC-4.
	tests := []struct {
		name     string
		now      time.Time
		entries  []hours.OperationHours
		wantOpen bool
		wantText string
	}{
		{
			name:     "no hours configured",
			now:      fridayNoon,
			wantText: "Closed",
		},
		{
			name:     "open during same-day window",
			now:      fridayNoon,
			entries:  []hours.OperationHours{utcHours(time.Friday, "15:00", "23:00")},
			wantOpen: true,
			wantText: "Open until 7:00 PM",
		},
		{
			name:     "before opening",
			now:      fridayNoon,
			entries:  []hours.OperationHours{utcHours(time.Friday, "21:00", "02:00")},
			wantText: "Opens at 5:00 PM",
		},
		{
			name: "overnight window opened yesterday",
			// 01:30 EDT Saturday.
			now:      time.Date(2025, 8, 16, 5, 30, 0, 0, time.UTC),
			entries:  []hours.OperationHours{utcHours(time.Friday, "02:00", "06:00")},
			wantOpen: true,
			wantText: "Open until 2:00 AM",
		},
		{
			name:     "overnight window from yesterday already closed",
			now:      time.Date(2025, 8, 16, 8, 0, 0, 0, time.UTC),
			entries:  []hours.OperationHours{utcHours(time.Friday, "02:00", "06:00")},
			wantText: "Closed",
		},
		{
			name: "disabled entry ignored",
			now:  fridayNoon,
			entries: []hours.OperationHours{
				{DayOfWeek: time.Friday, OpenTime: "15:00", CloseTime: "23:00", Enabled: false},
			},
			wantText: "Closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newHoursService(t, tt.now)
			ctx := context.Background()

			for _, e := range tt.entries {
				if _, err := svc.Create(ctx, &e); err != nil {
					t.Fatalf("Create() error = %v", err)
				}
			}

			got, err := svc.Status(ctx)
			if err != nil {
				t.Fatalf("Status() error = %v", err)
			}
			if got.Open != tt.wantOpen {
				t.Errorf("Open = %v, want %v", got.Open, tt.wantOpen)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if !got.Now.Equal(tt.now) {
				t.Errorf("Now = %v, want %v", got.Now, tt.now)
			}
		})
	}
}

func TestHoursService_CivilWindow(t *testing.T) {
	t.Parallel()
	svc := newHoursService(t, fridayNoon)

	w, err := svc.CivilWindow(utcHours(time.Friday, "02:00", "06:00"))
	if err != nil {
		t.Fatalf("CivilWindow() error = %v", err)
	}
	if w.Open.String() != "22:00" || w.Close.String() != "02:00" {
		t.Errorf("CivilWindow() = %s-%s, want 22:00-02:00", w.Open, w.Close)
	}
	if !w.Overnight() {
		t.Error("CivilWindow() should be overnight")
	}
	if w.Day == nil || *w.Day != time.Friday {
		t.Errorf("CivilWindow().Day = %v, want Friday", w.Day)
	}

	if _, err := svc.CivilWindow(utcHours(time.Friday, "bad", "06:00")); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CivilWindow(bad) error = %v, want ErrValidation", err)
	}
}
