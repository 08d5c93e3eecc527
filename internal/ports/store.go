package ports

import (
	"context"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
)

// Store is the persistence port for one entity type. Implemented by the
// memory and postgres adapters; called by the application layer.
//
// T is the entity struct; *T embeds domain.Meta, whose ID and timestamps
// are owned by the store.
type Store[T any] interface {
	// List returns one page of entities matching params.Filter, ordered by
	// params.OrderBy (ID when empty).
	List(ctx context.Context, params domain.ListParams) (domain.Page[T], error)

	// Get returns a single entity by ID.
	// Returns domain.ErrNotFound if the entity does not exist.
	Get(ctx context.Context, id int64) (*T, error)

	// Create assigns an ID and timestamps and persists the entity.
	Create(ctx context.Context, entity *T) (*T, error)

	// Update replaces the entity with the ID carried in its metadata,
	// preserving CreatedAt.
	// Returns domain.ErrNotFound if the entity does not exist.
	Update(ctx context.Context, entity *T) (*T, error)

	// Delete removes an entity by ID.
	// Returns domain.ErrNotFound if the entity does not exist.
	Delete(ctx context.Context, id int64) error
}
