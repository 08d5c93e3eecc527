// Package postgres implements ports.Store on PostgreSQL through database/sql
// and the lib/pq driver. Every entity kind shares one JSONB document table;
// the id and audit timestamps live in their own columns and are the source
// of truth for the embedded domain.Meta.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/config"
)

// uniqueViolation is the SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// Open connects to PostgreSQL, applies the pool settings, verifies the
// connection and creates the document table when missing.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := EnsureSchema(ctx, db, cfg.Table); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the document table and its indexes.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	for _, stmt := range schemaStatements(table) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}
	return nil
}

// schemaStatements returns the DDL for table. Operation hours allow one row
// per day of week; the partial index turns a concurrent duplicate insert
// into a unique violation.
func schemaStatements(table string) []string {
	t := pq.QuoteIdentifier(table)
	kindIdx := pq.QuoteIdentifier(table + "_kind_idx")
	dayIdx := pq.QuoteIdentifier(table + "_hours_day_idx")

	return []string{
		`CREATE TABLE IF NOT EXISTS ` + t + ` (
			id         BIGSERIAL PRIMARY KEY,
			kind       TEXT        NOT NULL,
			data       JSONB       NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ` + kindIdx + ` ON ` + t + ` (kind)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + dayIdx + ` ON ` + t +
			` ((data->>'day_of_week')) WHERE kind = ` + pq.QuoteLiteral(hours.Kind),
	}
}

// translateError maps driver errors onto domain sentinels.
func translateError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == uniqueViolation {
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pqErr.Message)
		}
		return fmt.Errorf("%s: %s: %w", op, pqErr.Code.Name(), err)
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// HealthChecker reports database reachability for the readiness probe.
type HealthChecker struct {
	db      *sql.DB
	timeout time.Duration
}

// NewHealthChecker wraps db. Each check is bounded by timeout.
func NewHealthChecker(db *sql.DB, timeout time.Duration) *HealthChecker {
	return &HealthChecker{db: db, timeout: timeout}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string {
	return "database"
}

// HealthCheck implements ports.HealthChecker.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := h.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}
