// Package hours models the restaurant's weekly operation hours.
//
// Open and close times are stored as UTC time-of-day strings; the day of
// week is the civil day the window opens on. Conversion to and from the
// civil zone happens in the application layer.
package hours

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
)

// Kind is the store kind for operation hours.
const Kind = "operation_hours"

// OperationHours is one day's opening window.
type OperationHours struct {
	domain.Meta
	DayOfWeek time.Weekday `json:"day_of_week"`
	OpenTime  string       `json:"open_time"`
	CloseTime string       `json:"close_time"`
	Enabled   bool         `json:"enabled"`
}

// Validate checks business rules for the OperationHours entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (h *OperationHours) Validate() error {
	fields := make(map[string]string)

	if h.DayOfWeek < time.Sunday || h.DayOfWeek > time.Saturday {
		fields["day_of_week"] = fmt.Sprintf("must be 0-6, got %d", h.DayOfWeek)
	}
	checkTime(fields, "open_time", h.OpenTime)
	checkTime(fields, "close_time", h.CloseTime)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func checkTime(fields map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = domain.MsgRequired
		return
	}
	if _, err := civiltime.ParseTimeOfDay(value); err != nil {
		fields[name] = "must be HH:MM or HH:MM:SS"
	}
}

// ParseWeekday accepts a day number (0 = Sunday) or an English day name.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return time.Weekday(s[0] - '0'), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) || strings.EqualFold(s, d.String()[:3]) {
			return d, nil
		}
	}
	return 0, domain.NewValidationError("day", fmt.Sprintf("invalid: %q", s))
}
