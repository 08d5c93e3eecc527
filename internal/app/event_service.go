package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that EventService implements ports.EventService.
var _ ports.EventService = (*EventService)(nil)

// EventService implements ports.EventService.
type EventService struct {
	*EntityService[event.Event, *event.Event]
	now    func() time.Time
	logger *slog.Logger
}

// NewEventService creates an EventService. now supplies the current
// instant for Active; it is usually Converter.Now.
func NewEventService(store ports.Store[event.Event], now func() time.Time, paging Paging, logger *slog.Logger) *EventService {
	logger = logging.OrDiscard(logger)
	return &EventService{
		EntityService: NewEntityService(store, "event", paging, logger),
		now:           now,
		logger:        logger,
	}
}

// Active returns published events that are upcoming or running, ordered
// by start. A limit of zero or less returns all of them.
func (s *EventService) Active(ctx context.Context, limit int) ([]event.Event, error) {
	all, err := s.all(ctx, domain.Filter{"published": "true"}, "starts_at")
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list events",
			slog.String("operation", "Active"),
			slog.Any("error", err),
		)
		return nil, err
	}

	now := s.now()
	active := make([]event.Event, 0, len(all))
	for _, e := range all {
		if e.StatusAt(now) == civiltime.EventEnded {
			continue
		}
		active = append(active, e)
		if limit > 0 && len(active) == limit {
			break
		}
	}
	return active, nil
}
