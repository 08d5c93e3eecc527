package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that TimeService implements ports.TimeService.
var _ ports.TimeService = (*TimeService)(nil)

// TimeService implements ports.TimeService on a shared Converter and counts
// every conversion.
type TimeService struct {
	converter *civiltime.Converter
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// NewTimeService creates a TimeService. metrics may be nil.
func NewTimeService(converter *civiltime.Converter, metrics *telemetry.Metrics, logger *slog.Logger) *TimeService {
	return &TimeService{
		converter: converter,
		metrics:   metrics,
		logger:    logging.OrDiscard(logger),
	}
}

// Snapshot reports the server clock in both zones.
func (s *TimeService) Snapshot(_ context.Context) ports.TimeSnapshot {
	now := s.converter.Now()
	return ports.TimeSnapshot{
		UTC:      now,
		Civil:    s.converter.UTCToCivil(now),
		Zone:     s.converter.ZoneInfo(now),
		Location: s.converter.Location().String(),
	}
}

// ConvertTimeOfDay converts value in the given direction.
func (s *TimeService) ConvertTimeOfDay(ctx context.Context, value string, dir ports.Direction) (civiltime.TimeOfDay, error) {
	var (
		out civiltime.TimeOfDay
		err error
	)
	switch dir {
	case ports.ToUTC:
		out, err = s.converter.TimeOfDayToUTC(value)
	case ports.FromUTC:
		out, err = s.converter.TimeOfDayFromUTC(value)
	default:
		return civiltime.TimeOfDay{}, invalidDirection(dir)
	}

	s.record(ctx, "time_of_day_"+string(dir), value, err)
	return out, err
}

// ConvertDateTime converts a civil datetime to UTC (ToUTC) or a UTC
// datetime to civil time (FromUTC). Both representations are returned.
func (s *TimeService) ConvertDateTime(ctx context.Context, value string, dir ports.Direction) (time.Time, civiltime.DateTime, error) {
	var (
		instant time.Time
		err     error
	)
	switch dir {
	case ports.ToUTC:
		instant, err = s.converter.CivilToUTC(value)
	case ports.FromUTC:
		instant, err = civiltime.ParseUTCInstant(value)
	default:
		return time.Time{}, civiltime.DateTime{}, invalidDirection(dir)
	}

	s.record(ctx, "datetime_"+string(dir), value, err)
	if err != nil {
		return time.Time{}, civiltime.DateTime{}, err
	}
	return instant, s.converter.UTCToCivil(instant), nil
}

func (s *TimeService) record(ctx context.Context, operation, value string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, civiltime.ErrInvalidCivilTime):
		result = "invalid_civil_time"
	default:
		result = "invalid_format"
	}
	s.metrics.CountConversion(ctx, operation, result)

	if err != nil {
		s.logger.DebugContext(ctx, "conversion rejected",
			slog.String("operation", operation),
			slog.String("value", value),
			slog.Any("error", err),
		)
	}
}

func invalidDirection(dir ports.Direction) error {
	return domain.NewValidationError("direction", fmt.Sprintf("must be %q or %q, got %q", ports.ToUTC, ports.FromUTC, dir))
}
