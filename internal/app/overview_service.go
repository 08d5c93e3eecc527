package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that OverviewService implements ports.OverviewService.
var _ ports.OverviewService = (*OverviewService)(nil)

// overviewEvents is how many upcoming events the home page shows.
const overviewEvents = 5

// OverviewService implements ports.OverviewService by querying hours,
// events and specials concurrently.
type OverviewService struct {
	hours    ports.HoursService
	events   ports.EventService
	specials ports.SpecialService
	logger   *slog.Logger
}

// NewOverviewService creates an OverviewService.
func NewOverviewService(h ports.HoursService, e ports.EventService, sp ports.SpecialService, logger *slog.Logger) *OverviewService {
	return &OverviewService{
		hours:    h,
		events:   e,
		specials: sp,
		logger:   logging.OrDiscard(logger),
	}
}

// Overview assembles the home page. The first failure cancels the other
// queries and is returned.
func (s *OverviewService) Overview(ctx context.Context) (*ports.Overview, error) {
	var out ports.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.hours.Status(gctx)
		out.Hours = st
		return err
	})
	g.Go(func() error {
		ev, err := s.events.Active(gctx, overviewEvents)
		out.Events = ev
		return err
	})
	g.Go(func() error {
		sp, err := s.specials.Today(gctx)
		out.Specials = sp
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to build overview",
			slog.String("operation", "Overview"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &out, nil
}
