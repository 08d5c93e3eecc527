// Package admin models dashboard accounts.
package admin

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
)

// Role is the only authorization attribute an admin carries.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleEditor:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Admin is a dashboard user. PasswordHash holds a bcrypt hash, never the
// plaintext.
type Admin struct {
	domain.Meta
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	Role         Role   `json:"role"`
}

// NormalizeEmail lowercases and trims an address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks business rules for the Admin entity.
func (a *Admin) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.Email) == "" {
		fields["email"] = domain.MsgRequired
	} else if _, err := mail.ParseAddress(a.Email); err != nil {
		fields["email"] = fmt.Sprintf("invalid: %q", a.Email)
	}
	if a.PasswordHash == "" {
		fields["password"] = domain.MsgRequired
	}
	if !a.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", a.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
