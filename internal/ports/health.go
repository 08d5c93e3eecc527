package ports

import "context"

// HealthChecker is a dependency the readiness probe reports on: the
// PostgreSQL store and the media backend (HTTP service or S3 bucket).
type HealthChecker interface {
	// Name keys the result in the readiness response ("database",
	// "media-storage").
	Name() string

	// HealthCheck returns nil when the dependency is usable. The registry
	// bounds ctx with the configured per-check timeout.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for
// GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check concurrently. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
