// Package memory implements ports.Store in process memory. It is the
// default store for local runs and the store used by service tests.
package memory

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides time.Now for CreatedAt/UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Store keeps entities as JSON documents, so values handed out never alias
// stored state.
type Store[T any, P domain.RecordPtr[T]] struct {
	kind string
	now  func() time.Time

	mu     sync.RWMutex
	nextID int64
	docs   map[int64][]byte
}

// NewStore creates an empty store. kind names the entity in errors.
func NewStore[T any, P domain.RecordPtr[T]](kind string, opts ...Option) *Store[T, P] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T, P]{
		kind:   kind,
		now:    o.now,
		nextID: 1,
		docs:   make(map[int64][]byte),
	}
}

// List implements ports.Store.
func (s *Store[T, P]) List(ctx context.Context, params domain.ListParams) (domain.Page[T], error) {
	if err := ctx.Err(); err != nil {
		return domain.Page[T]{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	type row struct {
		id     int64
		fields map[string]any
	}

	var rows []row
	for _, id := range slices.Sorted(maps.Keys(s.docs)) {
		fields, err := decodeFields(s.docs[id])
		if err != nil {
			return domain.Page[T]{}, fmt.Errorf("%s %d: %w", s.kind, id, err)
		}
		if matches(fields, params.Filter) {
			rows = append(rows, row{id: id, fields: fields})
		}
	}

	if params.OrderBy != "" {
		slices.SortStableFunc(rows, func(a, b row) int {
			c := compareValues(a.fields[params.OrderBy], b.fields[params.OrderBy])
			if params.Desc {
				c = -c
			}
			return cmp.Or(c, cmp.Compare(a.id, b.id))
		})
	} else if params.Desc {
		slices.Reverse(rows)
	}

	page := domain.Page[T]{Total: len(rows), Page: params.Page, PageSize: params.PageSize}
	if params.PageSize > 0 {
		start := min(params.Offset(), len(rows))
		end := min(start+params.PageSize, len(rows))
		rows = rows[start:end]
	}

	page.Items = make([]T, 0, len(rows))
	for _, r := range rows {
		entity, err := s.decode(r.id)
		if err != nil {
			return domain.Page[T]{}, err
		}
		page.Items = append(page.Items, *entity)
	}
	return page, nil
}

// Get implements ports.Store.
func (s *Store[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.docs[id]; !ok {
		return nil, s.notFound(id)
	}
	return s.decode(id)
}

// Create implements ports.Store.
func (s *Store[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := *entity
	meta := P(&doc).Metadata()
	meta.ID = s.nextID
	meta.CreatedAt = s.now().UTC()
	meta.UpdatedAt = meta.CreatedAt

	if err := s.encode(meta.ID, &doc); err != nil {
		return nil, err
	}
	s.nextID++
	return s.decode(meta.ID)
}

// Update implements ports.Store.
func (s *Store[T, P]) Update(ctx context.Context, entity *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := *entity
	meta := P(&doc).Metadata()
	if _, ok := s.docs[meta.ID]; !ok {
		return nil, s.notFound(meta.ID)
	}

	existing, err := s.decode(meta.ID)
	if err != nil {
		return nil, err
	}
	meta.CreatedAt = P(existing).Metadata().CreatedAt
	meta.UpdatedAt = s.now().UTC()

	if err := s.encode(meta.ID, &doc); err != nil {
		return nil, err
	}
	return s.decode(meta.ID)
}

// Delete implements ports.Store.
func (s *Store[T, P]) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return s.notFound(id)
	}
	delete(s.docs, id)
	return nil
}

// Len returns the number of stored entities.
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func (s *Store[T, P]) notFound(id int64) error {
	return fmt.Errorf("%s %d: %w", s.kind, id, domain.ErrNotFound)
}

func (s *Store[T, P]) encode(id int64, entity *T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("encoding %s %d: %w", s.kind, id, err)
	}
	s.docs[id] = data
	return nil
}

func (s *Store[T, P]) decode(id int64) (*T, error) {
	var entity T
	if err := json.Unmarshal(s.docs[id], &entity); err != nil {
		return nil, fmt.Errorf("decoding %s %d: %w", s.kind, id, err)
	}
	return &entity, nil
}

func decodeFields(doc []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func matches(fields map[string]any, filter domain.Filter) bool {
	for key, want := range filter {
		got, ok := text(fields[key])
		if !ok || got != want {
			return false
		}
	}
	return true
}

// text renders a scalar JSON value the way PostgreSQL's ->> operator does.
func text(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// compareValues orders JSON values the way an ascending ORDER BY on a jsonb
// field does: strings, then numbers, then booleans, with missing values last.
func compareValues(a, b any) int {
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case string:
		return strings.Compare(a, b.(string))
	case json.Number:
		af, _ := a.Float64()
		bf, _ := b.(json.Number).Float64()
		return cmp.Compare(af, bf)
	case bool:
		switch {
		case a == b.(bool):
			return 0
		case !a:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

func rank(v any) int {
	switch v.(type) {
	case string:
		return 0
	case json.Number:
		return 1
	case bool:
		return 2
	case nil:
		return 4
	default:
		return 3
	}
}
