// Package special models daily or date-bound menu specials.
package special

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
)

// Special is a promotional dish or deal. A special pinned to a day of week
// runs every week on that civil day; StartsAt and EndsAt, when set, bound
// the period it runs in.
type Special struct {
	domain.Meta
	Title       string        `json:"title"`
	Description string        `json:"description"`
	PriceCents  int64         `json:"price_cents"`
	DayOfWeek   *time.Weekday `json:"day_of_week,omitempty"`
	StartsAt    *time.Time    `json:"starts_at,omitempty"`
	EndsAt      *time.Time    `json:"ends_at,omitempty"`
	ImageURL    string        `json:"image_url"`
	Active      bool          `json:"active"`
}

// Validate checks business rules for the Special entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (s *Special) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if s.PriceCents < 0 {
		fields["price_cents"] = fmt.Sprintf("must not be negative, got %d", s.PriceCents)
	}
	if s.DayOfWeek != nil && (*s.DayOfWeek < time.Sunday || *s.DayOfWeek > time.Saturday) {
		fields["day_of_week"] = fmt.Sprintf("must be 0-6, got %d", *s.DayOfWeek)
	}
	if s.StartsAt != nil && s.EndsAt != nil && s.EndsAt.Before(*s.StartsAt) {
		fields["ends_at"] = "must not be before starts_at"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// StatusAt classifies the special's date bounds relative to now. An open
// bound never excludes now.
func (s *Special) StatusAt(now time.Time) civiltime.EventStatus {
	start := time.Time{}
	if s.StartsAt != nil {
		start = *s.StartsAt
	}
	end := now
	if s.EndsAt != nil {
		end = *s.EndsAt
	}
	return civiltime.EventStatusAt(start, end, now)
}

// AvailableOn reports whether the special is offered at now, where today
// is the civil weekday of now.
func (s *Special) AvailableOn(today time.Weekday, now time.Time) bool {
	if !s.Active || s.StatusAt(now) != civiltime.EventCurrent {
		return false
	}
	return s.DayOfWeek == nil || *s.DayOfWeek == today
}
