// Package event models scheduled restaurant events. Start and end are UTC
// instants.
package event

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
)

// Event is a one-off happening such as a tasting night or live music.
type Event struct {
	domain.Meta
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	ImageURL    string    `json:"image_url"`
	Published   bool      `json:"published"`
}

// Validate checks business rules for the Event entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (e *Event) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if e.StartsAt.IsZero() {
		fields["starts_at"] = domain.MsgRequired
	}
	if e.EndsAt.IsZero() {
		fields["ends_at"] = domain.MsgRequired
	}
	if !e.StartsAt.IsZero() && !e.EndsAt.IsZero() && e.EndsAt.Before(e.StartsAt) {
		fields["ends_at"] = "must not be before starts_at"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// StatusAt classifies the event relative to now.
func (e *Event) StatusAt(now time.Time) civiltime.EventStatus {
	return civiltime.EventStatusAt(e.StartsAt, e.EndsAt, now)
}
