package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
)

// metaColumns are stored fields served from table columns instead of the
// JSON document.
var metaColumns = map[string]string{
	"id":         "id",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// Store is a ports.Store over one entity kind in the shared document table.
type Store[T any, P domain.RecordPtr[T]] struct {
	db    *sql.DB
	table string
	kind  string
	now   func() time.Time
}

// NewStore returns a store for kind (e.g. "event") in table.
func NewStore[T any, P domain.RecordPtr[T]](db *sql.DB, table, kind string) *Store[T, P] {
	return &Store[T, P]{
		db:    db,
		table: pq.QuoteIdentifier(table),
		kind:  kind,
		now:   time.Now,
	}
}

// List implements ports.Store.
func (s *Store[T, P]) List(ctx context.Context, params domain.ListParams) (domain.Page[T], error) {
	where, args := s.whereClause(params.Filter)

	var total int
	countQuery := `SELECT count(*) FROM ` + s.table + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return domain.Page[T]{}, translateError("counting "+s.kind, err)
	}

	query := `SELECT id, data, created_at, updated_at FROM ` + s.table + where + s.orderClause(params, &args)
	if params.PageSize > 0 {
		args = append(args, params.PageSize, params.Offset())
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Page[T]{}, translateError("listing "+s.kind, err)
	}
	defer rows.Close()

	page := domain.Page[T]{Total: total, Page: params.Page, PageSize: params.PageSize, Items: []T{}}
	for rows.Next() {
		entity, err := s.scan(rows)
		if err != nil {
			return domain.Page[T]{}, err
		}
		page.Items = append(page.Items, *entity)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[T]{}, translateError("listing "+s.kind, err)
	}
	return page, nil
}

// Get implements ports.Store.
func (s *Store[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, data, created_at, updated_at FROM `+s.table+` WHERE kind = $1 AND id = $2`,
		s.kind, id)

	entity, err := s.scan(row)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", s.kind, id, err)
	}
	return entity, nil
}

// Create implements ports.Store.
func (s *Store[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", s.kind, err)
	}

	row := s.db.QueryRowContext(ctx,
		`INSERT INTO `+s.table+` (kind, data, created_at, updated_at) VALUES ($1, $2, $3, $3)
		 RETURNING id, data, created_at, updated_at`,
		s.kind, data, s.now().UTC())
	return s.scan(row)
}

// Update implements ports.Store.
func (s *Store[T, P]) Update(ctx context.Context, entity *T) (*T, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", s.kind, err)
	}

	id := P(entity).Metadata().ID
	row := s.db.QueryRowContext(ctx,
		`UPDATE `+s.table+` SET data = $1, updated_at = $2 WHERE kind = $3 AND id = $4
		 RETURNING id, data, created_at, updated_at`,
		data, s.now().UTC(), s.kind, id)

	updated, err := s.scan(row)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", s.kind, id, err)
	}
	return updated, nil
}

// Delete implements ports.Store.
func (s *Store[T, P]) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE kind = $1 AND id = $2`, s.kind, id)
	if err != nil {
		return translateError("deleting "+s.kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateError("deleting "+s.kind, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", s.kind, id, domain.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store[T, P]) scan(row scanner) (*T, error) {
	var (
		meta domain.Meta
		data []byte
	)
	if err := row.Scan(&meta.ID, &data, &meta.CreatedAt, &meta.UpdatedAt); err != nil {
		return nil, translateError("reading "+s.kind, err)
	}

	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("decoding %s %d: %w", s.kind, meta.ID, err)
	}

	meta.CreatedAt = meta.CreatedAt.UTC()
	meta.UpdatedAt = meta.UpdatedAt.UTC()
	*P(&entity).Metadata() = meta
	return &entity, nil
}

// whereClause builds the kind and equality filter predicates. Keys and
// values are both bound as parameters.
func (s *Store[T, P]) whereClause(filter domain.Filter) (string, []any) {
	args := []any{s.kind}
	clauses := []string{"kind = $1"}

	for _, key := range sortedKeys(filter) {
		if col, ok := metaColumns[key]; ok {
			args = append(args, filter[key])
			clauses = append(clauses, fmt.Sprintf("%s::text = $%d", col, len(args)))
			continue
		}
		args = append(args, key, filter[key])
		clauses = append(clauses, fmt.Sprintf("data->>($%d::text) = $%d", len(args)-1, len(args)))
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *Store[T, P]) orderClause(params domain.ListParams, args *[]any) string {
	dir := " ASC"
	if params.Desc {
		dir = " DESC"
	}

	switch col, ok := metaColumns[params.OrderBy]; {
	case params.OrderBy == "":
		return " ORDER BY id" + dir
	case ok:
		return " ORDER BY " + col + dir + ", id"
	default:
		*args = append(*args, params.OrderBy)
		return " ORDER BY data->($" + strconv.Itoa(len(*args)) + "::text)" + dir + ", id"
	}
}

// sortedKeys keeps generated SQL stable for identical filters.
func sortedKeys(f domain.Filter) []string {
	return slices.Sorted(maps.Keys(f))
}
