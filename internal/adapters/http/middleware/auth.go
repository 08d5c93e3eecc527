package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

const (
	headerAuthorization   = "Authorization"
	headerWWWAuthenticate = "WWW-Authenticate"
	bearerPrefix          = "bearer "
)

// principalKey is the context key for the authenticated admin.
type principalKey struct{}

// WithPrincipal returns a new context carrying the authenticated admin.
func WithPrincipal(ctx context.Context, p *ports.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated admin, or nil when the
// request did not pass through RequireAdmin.
func PrincipalFromContext(ctx context.Context) *ports.Principal {
	p, _ := ctx.Value(principalKey{}).(*ports.Principal)
	return p
}

// authenticated stores the principal and tags the request logger with it.
func authenticated(ctx context.Context, p *ports.Principal) context.Context {
	logger := logging.FromContext(ctx).With(slog.Int64("admin_id", p.AdminID))
	return logging.WithLogger(WithPrincipal(ctx, p), logger)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get(headerAuthorization))
	if header == "" {
		return "", fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized)
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", fmt.Errorf("%w: authorization scheme must be Bearer", domain.ErrUnauthorized)
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), nil
}

// RequireAdmin returns middleware that rejects requests without a valid
// admin bearer token with 401. The verified principal is stored in the
// request context and added to the request logger. A principal already in
// the context is trusted as is.
func RequireAdmin(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Already verified by IdentifyAdmin on this request.
			if PrincipalFromContext(ctx) != nil {
				next.ServeHTTP(w, r)
				return
			}

			token, err := bearerToken(r)
			if err == nil {
				var p *ports.Principal
				p, err = auth.Authenticate(ctx, token)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(authenticated(ctx, p)))
					return
				}
			}

			logging.FromContext(ctx).WarnContext(ctx, "rejected admin request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
			w.Header().Set(headerWWWAuthenticate, `Bearer realm="restaurant-api"`)
			dto.WriteErrorResponse(w, r, err)
		})
	}
}

// IdentifyAdmin returns middleware for public routes. A valid bearer token
// attaches the principal like RequireAdmin does; a missing or invalid one
// leaves the request anonymous.
func IdentifyAdmin(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(headerAuthorization) == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			token, err := bearerToken(r)
			if err == nil {
				var p *ports.Principal
				if p, err = auth.Authenticate(ctx, token); err == nil {
					ctx = authenticated(ctx, p)
				}
			}
			if err != nil {
				logging.FromContext(ctx).DebugContext(ctx, "serving request anonymously", slog.Any("error", err))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NoStore marks responses as uncacheable. Admin responses carry drafts and
// account data that shared caches must not keep.
func NoStore() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}
