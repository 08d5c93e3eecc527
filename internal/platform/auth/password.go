package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher hashes passwords with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, clamped to bcrypt's range.
func NewBcryptHasher(cost int) *BcryptHasher {
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domain.NewValidationError("password", domain.MsgRequired)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.NewValidationError("password", "must be at most 72 bytes")
		}
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

// Compare returns domain.ErrUnauthorized when password does not match hash.
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	default:
		return fmt.Errorf("comparing password: %w", err)
	}
}
