package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/special"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that SpecialService implements ports.SpecialService.
var _ ports.SpecialService = (*SpecialService)(nil)

// SpecialService implements ports.SpecialService.
type SpecialService struct {
	*EntityService[special.Special, *special.Special]
	converter *civiltime.Converter
	logger    *slog.Logger
}

// NewSpecialService creates a SpecialService. The converter decides which
// civil weekday "today" is.
func NewSpecialService(store ports.Store[special.Special], converter *civiltime.Converter, paging Paging, logger *slog.Logger) *SpecialService {
	logger = logging.OrDiscard(logger)
	return &SpecialService{
		EntityService: NewEntityService(store, "special", paging, logger),
		converter:     converter,
		logger:        logger,
	}
}

// Today returns active specials offered on the current civil day.
func (s *SpecialService) Today(ctx context.Context) ([]special.Special, error) {
	all, err := s.all(ctx, domain.Filter{"active": "true"}, "")
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list specials",
			slog.String("operation", "Today"),
			slog.Any("error", err),
		)
		return nil, err
	}

	now := s.converter.Now()
	today := s.converter.UTCToCivil(now).Weekday()

	offered := make([]special.Special, 0, len(all))
	for _, sp := range all {
		if sp.AvailableOn(today, now) {
			offered = append(offered, sp)
		}
	}
	return offered, nil
}
