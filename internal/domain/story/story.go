// Package story models the short articles shown on the "Our Story" page.
package story

import (
	"strings"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
)

// Story is a titled piece of prose with an optional image.
type Story struct {
	domain.Meta
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

// Validate checks business rules for the Story entity.
func (s *Story) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(s.Body) == "" {
		fields["body"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
