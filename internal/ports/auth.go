package ports

import (
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
)

// Principal is the authenticated admin behind a request.
type Principal struct {
	AdminID int64
	Email   string
	Role    admin.Role
	TokenID string
}

// Token is a signed bearer token and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies admin bearer tokens.
type TokenIssuer interface {
	// Issue signs a token for the admin.
	Issue(a *admin.Admin) (Token, error)

	// Verify checks the signature, issuer and expiry and returns the
	// principal the token was issued to.
	// Returns domain.ErrUnauthorized for any invalid token.
	Verify(token string) (*Principal, error)
}

// PasswordHasher hashes and checks admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
