package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)

// AuthService implements ports.AuthService.
type AuthService struct {
	admins  ports.Store[admin.Admin]
	tokens  ports.TokenIssuer
	hasher  ports.PasswordHasher
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewAuthService creates an AuthService. metrics may be nil.
func NewAuthService(
	admins ports.Store[admin.Admin],
	tokens ports.TokenIssuer,
	hasher ports.PasswordHasher,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		admins:  admins,
		tokens:  tokens,
		hasher:  hasher,
		metrics: metrics,
		logger:  logging.OrDiscard(logger),
	}
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	page, err := s.admins.List(ctx, domain.ListParams{
		Filter:   domain.Filter{"email": admin.NormalizeEmail(email)},
		Page:     1,
		PageSize: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, fmt.Errorf("admin %q: %w", email, domain.ErrNotFound)
	}
	return &page.Items[0], nil
}

// Login checks credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	if email == "" || password == "" {
		s.metrics.CountLogin(ctx, "invalid")
		return nil, errInvalidCredentials
	}

	a, err := s.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "login for unknown admin")
			s.metrics.CountLogin(ctx, "failure")
			return nil, errInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "failed to look up admin",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		s.metrics.CountLogin(ctx, "error")
		return nil, err
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.logger.WarnContext(ctx, "login with wrong password", slog.Int64("admin_id", a.ID))
			s.metrics.CountLogin(ctx, "failure")
			return nil, errInvalidCredentials
		}
		s.metrics.CountLogin(ctx, "error")
		return nil, err
	}

	tok, err := s.tokens.Issue(a)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Login"),
			slog.Int64("admin_id", a.ID),
			slog.Any("error", err),
		)
		s.metrics.CountLogin(ctx, "error")
		return nil, err
	}

	s.logger.InfoContext(ctx, "admin logged in", slog.Int64("admin_id", a.ID))
	s.metrics.CountLogin(ctx, "success")
	return &ports.Session{Admin: a, Token: tok}, nil
}

// Authenticate verifies a bearer token and confirms the admin still exists.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*ports.Principal, error) {
	p, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	if _, err := s.admins.Get(ctx, p.AdminID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: admin %d no longer exists", domain.ErrUnauthorized, p.AdminID)
		}
		return nil, err
	}
	return p, nil
}

// Me returns the admin behind p.
func (s *AuthService) Me(ctx context.Context, p *ports.Principal) (*admin.Admin, error) {
	if p == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.admins.Get(ctx, p.AdminID)
}

// EnsureAdmin creates an owner account for email unless one exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.findByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing bootstrap password: %w", err)
	}

	a := &admin.Admin{
		Email:        admin.NormalizeEmail(email),
		Name:         "Owner",
		PasswordHash: hash,
		Role:         admin.RoleOwner,
	}
	if err := a.Validate(); err != nil {
		return err
	}

	created, err := s.admins.Create(ctx, a)
	if err != nil {
		return fmt.Errorf("creating bootstrap admin: %w", err)
	}

	s.logger.InfoContext(ctx, "bootstrap admin created", slog.Int64("admin_id", created.ID))
	return nil
}
