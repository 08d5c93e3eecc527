package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/config"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// leeway tolerates small clock skew between replicas.
const leeway = 30 * time.Second

// Claims is the payload of an admin access token. The subject holds the
// admin ID.
type Claims struct {
	Email string     `json:"email"`
	Role  admin.Role `json:"role"`
	jwt.RegisteredClaims
}

var _ ports.TokenIssuer = (*TokenIssuer)(nil)

// TokenIssuer signs and verifies admin tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption configures a TokenIssuer.
type TokenOption func(*TokenIssuer)

// WithTokenClock overrides the clock used for issued-at, expiry and
// verification.
func WithTokenClock(now func() time.Time) TokenOption {
	return func(t *TokenIssuer) { t.now = now }
}

// NewTokenIssuer builds a TokenIssuer from the auth configuration.
func NewTokenIssuer(cfg config.AuthConfig, opts ...TokenOption) *TokenIssuer {
	t := &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Issue signs a token for a.
func (t *TokenIssuer) Issue(a *admin.Admin) (ports.Token, error) {
	if a == nil || a.ID == 0 {
		return ports.Token{}, errors.New("issuing token: admin has no id")
	}

	now := t.now().UTC()
	expires := now.Add(t.ttl)

	claims := Claims{
		Email: a.Email,
		Role:  a.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(a.ID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return ports.Token{}, fmt.Errorf("signing token: %w", err)
	}

	return ports.Token{Value: signed, ExpiresAt: expires}, nil
}

// Verify parses and validates value. Every failure wraps
// domain.ErrUnauthorized.
func (t *TokenIssuer) Verify(value string) (*ports.Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(value, claims,
		func(token *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token has expired", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: invalid token subject", domain.ErrUnauthorized)
	}

	return &ports.Principal{
		AdminID: id,
		Email:   claims.Email,
		Role:    claims.Role,
		TokenID: claims.ID,
	}, nil
}
