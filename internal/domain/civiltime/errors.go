package civiltime

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
)

// Error kinds for errors.Is checks. Every *ParseError also matches
// domain.ErrValidation so inbound adapters answer with a client error.
var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidCivilTime = errors.New("invalid civil time")
)

// ParseError describes a rejected time or datetime string.
type ParseError struct {
	Kind   error
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("%v: %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() []error {
	return []error{e.Kind, domain.ErrValidation}
}

func formatError(input, reason string) error {
	return &ParseError{Kind: ErrInvalidFormat, Input: input, Reason: reason}
}

func civilError(input, reason string) error {
	return &ParseError{Kind: ErrInvalidCivilTime, Input: input, Reason: reason}
}
