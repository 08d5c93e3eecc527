// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Paging holds the page-size limits applied to every list call.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// Hook runs after validation and before an entity is written. Returning an
// error aborts the write.
type Hook[T any] func(ctx context.Context, entity *T) error

// DeleteHook runs before an entity is deleted.
type DeleteHook func(ctx context.Context, id int64) error

// EntityService implements ports.EntityService for any record type on top
// of a ports.Store. Entity-specific services embed it and add their own use
// cases.
type EntityService[T any, P domain.RecordPtr[T]] struct {
	store        ports.Store[T]
	name         string
	paging       Paging
	beforeWrite  Hook[T]
	beforeDelete DeleteHook
	logger       *slog.Logger
}

// EntityOption configures an EntityService.
type EntityOption[T any, P domain.RecordPtr[T]] func(*EntityService[T, P])

// WithBeforeWrite installs a hook run on Create and Update.
func WithBeforeWrite[T any, P domain.RecordPtr[T]](h Hook[T]) EntityOption[T, P] {
	return func(s *EntityService[T, P]) { s.beforeWrite = h }
}

// WithBeforeDelete installs a hook run on Delete.
func WithBeforeDelete[T any, P domain.RecordPtr[T]](h DeleteHook) EntityOption[T, P] {
	return func(s *EntityService[T, P]) { s.beforeDelete = h }
}

// NewEntityService creates an EntityService. The name identifies the entity
// in log lines ("event", "menu_item").
func NewEntityService[T any, P domain.RecordPtr[T]](
	store ports.Store[T],
	name string,
	paging Paging,
	logger *slog.Logger,
	opts ...EntityOption[T, P],
) *EntityService[T, P] {
	s := &EntityService[T, P]{
		store:  store,
		name:   name,
		paging: paging,
		logger: logging.OrDiscard(logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of entities.
func (s *EntityService[T, P]) List(ctx context.Context, params domain.ListParams) (domain.Page[T], error) {
	params = params.Normalize(s.paging.DefaultSize, s.paging.MaxSize)

	s.logger.DebugContext(ctx, "listing entities",
		slog.String("entity", s.name),
		slog.Int("page", params.Page),
		slog.Int("page_size", params.PageSize),
	)

	page, err := s.store.List(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list entities",
			slog.String("operation", "List"),
			slog.String("entity", s.name),
			slog.Any("error", err),
		)
		return domain.Page[T]{}, err
	}

	return page, nil
}

// all returns every entity matching filter, ordered by orderBy.
func (s *EntityService[T, P]) all(ctx context.Context, filter domain.Filter, orderBy string) ([]T, error) {
	page, err := s.store.List(ctx, domain.ListParams{Filter: filter, OrderBy: orderBy})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Get returns a single entity by ID.
func (s *EntityService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	entity, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch entity",
			slog.String("operation", "Get"),
			slog.String("entity", s.name),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return entity, nil
}

// Create validates and persists a new entity. Any client-supplied metadata
// is discarded.
func (s *EntityService[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	s.logger.InfoContext(ctx, "creating entity", slog.String("entity", s.name))

	p := P(entity)
	*p.Metadata() = domain.Meta{}

	if err := s.check(ctx, entity); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, entity)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create entity",
			slog.String("operation", "Create"),
			slog.String("entity", s.name),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// Update validates and replaces the entity with the given ID.
func (s *EntityService[T, P]) Update(ctx context.Context, id int64, entity *T) (*T, error) {
	s.logger.InfoContext(ctx, "updating entity",
		slog.String("entity", s.name),
		slog.Int64("id", id),
	)

	p := P(entity)
	*p.Metadata() = domain.Meta{ID: id}

	if err := s.check(ctx, entity); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, entity)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update entity",
			slog.String("operation", "Update"),
			slog.String("entity", s.name),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete removes an entity.
func (s *EntityService[T, P]) Delete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting entity",
		slog.String("entity", s.name),
		slog.Int64("id", id),
	)

	if s.beforeDelete != nil {
		if err := s.beforeDelete(ctx, id); err != nil {
			return err
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete entity",
			slog.String("operation", "Delete"),
			slog.String("entity", s.name),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

func (s *EntityService[T, P]) check(ctx context.Context, entity *T) error {
	if err := P(entity).Validate(); err != nil {
		return err
	}
	if s.beforeWrite != nil {
		return s.beforeWrite(ctx, entity)
	}
	return nil
}
