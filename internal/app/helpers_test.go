package app

import (
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
)

// fridayNoon is 12:00 EDT on Friday 2025-08-15.
var fridayNoon = time.Date(2025, 8, 15, 16, 0, 0, 0, time.UTC)

var testPaging = Paging{DefaultSize: 20, MaxSize: 50}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTestConverter(t *testing.T, now time.Time) *civiltime.Converter {
	t.Helper()
	conv, err := civiltime.NewConverter("America/Toronto", civiltime.WithClock(fixedClock(now)))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	return conv
}
