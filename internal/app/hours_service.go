package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/app/fanout"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that HoursService implements ports.HoursService.
var _ ports.HoursService = (*HoursService)(nil)

// maxWeekWorkers bounds concurrent store writes in ReplaceWeek.
const maxWeekWorkers = 4

// HoursService implements ports.HoursService. Stored open and close times
// are UTC; Status converts them back to civil time before evaluating the
// business windows.
type HoursService struct {
	*EntityService[hours.OperationHours, *hours.OperationHours]
	converter *civiltime.Converter
	logger    *slog.Logger
}

// NewHoursService creates an HoursService. Only one entry per day of week
// may exist; creating a second returns domain.ErrConflict.
func NewHoursService(store ports.Store[hours.OperationHours], converter *civiltime.Converter, paging Paging, logger *slog.Logger) *HoursService {
	logger = logging.OrDiscard(logger)
	s := &HoursService{converter: converter, logger: logger}
	s.EntityService = NewEntityService(store, hours.Kind, paging, logger,
		WithBeforeWrite[hours.OperationHours](s.uniqueDay),
	)
	return s
}

func dayFilter(day time.Weekday) domain.Filter {
	return domain.Filter{"day_of_week": strconv.Itoa(int(day))}
}

func (s *HoursService) uniqueDay(ctx context.Context, h *hours.OperationHours) error {
	existing, err := s.all(ctx, dayFilter(h.DayOfWeek), "")
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.ID != h.ID {
			return fmt.Errorf("%w: hours for %s already exist (id %d)", domain.ErrConflict, h.DayOfWeek, e.ID)
		}
	}
	return nil
}

// ReplaceWeek upserts each entry by day of week. Entries are written
// concurrently and fail independently; a repeated day fails validation.
func (s *HoursService) ReplaceWeek(ctx context.Context, week []hours.OperationHours) (*ports.BulkResult[hours.OperationHours], error) {
	s.logger.InfoContext(ctx, "replacing weekly hours", slog.Int("count", len(week)))

	result := &ports.BulkResult[hours.OperationHours]{
		Saved:  []hours.OperationHours{},
		Errors: []ports.BulkError{},
	}

	seen := make(map[time.Weekday]int, len(week))
	type job struct {
		index int
		entry hours.OperationHours
	}
	jobs := make([]job, 0, len(week))
	for i, h := range week {
		if first, dup := seen[h.DayOfWeek]; dup {
			result.Errors = append(result.Errors, ports.BulkError{
				Index: i,
				Err:   domain.NewValidationError("day_of_week", fmt.Sprintf("duplicate of entry %d", first)),
			})
			continue
		}
		seen[h.DayOfWeek] = i
		jobs = append(jobs, job{index: i, entry: h})
	}

	results := fanout.Run(ctx, maxWeekWorkers, jobs, func(ctx context.Context, j job) (*hours.OperationHours, error) {
		return s.upsert(ctx, j.entry)
	})

	for i, r := range results {
		if r.Err != nil {
			s.logger.WarnContext(ctx, "failed to save hours entry",
				slog.String("operation", "ReplaceWeek"),
				slog.Int("index", jobs[i].index),
				slog.Any("error", r.Err),
			)
			result.Errors = append(result.Errors, ports.BulkError{Index: jobs[i].index, Err: r.Err})
			continue
		}
		result.Saved = append(result.Saved, *r.Value)
	}

	return result, nil
}

func (s *HoursService) upsert(ctx context.Context, h hours.OperationHours) (*hours.OperationHours, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.all(ctx, dayFilter(h.DayOfWeek), "")
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return s.Create(ctx, &h)
	}
	return s.Update(ctx, existing[0].ID, &h)
}

// CivilWindow converts a stored entry into a civil-time window pinned to
// its day of week.
func (s *HoursService) CivilWindow(h hours.OperationHours) (civiltime.Window, error) {
	open, err := s.converter.TimeOfDayFromUTC(h.OpenTime)
	if err != nil {
		return civiltime.Window{}, fmt.Errorf("open_time: %w", err)
	}
	closing, err := s.converter.TimeOfDayFromUTC(h.CloseTime)
	if err != nil {
		return civiltime.Window{}, fmt.Errorf("close_time: %w", err)
	}
	day := h.DayOfWeek
	return civiltime.Window{Open: open, Close: closing, Enabled: h.Enabled, Day: &day}, nil
}

// Status reports whether the restaurant is open now. Today's window and an
// overnight window that opened yesterday are both considered.
func (s *HoursService) Status(ctx context.Context) (*ports.HoursStatus, error) {
	now := s.converter.Now()
	civilNow := s.converter.UTCToCivil(now)
	today := civilNow.Weekday()
	yesterday := (today + 6) % 7

	entries, err := s.all(ctx, domain.Filter{"enabled": "true"}, "")
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load hours",
			slog.String("operation", "Status"),
			slog.Any("error", err),
		)
		return nil, err
	}

	status := &ports.HoursStatus{Text: "Closed", Now: now, CivilNow: civilNow}

	var todays *civiltime.Window
	for _, h := range entries {
		if h.DayOfWeek != today && h.DayOfWeek != yesterday {
			continue
		}
		w, err := s.CivilWindow(h)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unreadable hours entry",
				slog.Int64("id", h.ID),
				slog.Any("error", err),
			)
			continue
		}
		if w.Contains(civilNow) {
			status.Open = true
			status.Window = &w
			status.Text = w.StatusText(civilNow)
			return status, nil
		}
		if h.DayOfWeek == today {
			todays = &w
		}
	}

	if todays != nil {
		status.Window = todays
		status.Text = todays.StatusText(civilNow)
	}
	return status, nil
}
