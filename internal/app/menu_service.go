package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/menu"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time check that MenuService implements ports.MenuService.
var _ ports.MenuService = (*MenuService)(nil)

// MenuService implements ports.MenuService. Items must reference an
// existing category, and a category still holding items cannot be deleted.
type MenuService struct {
	categories *EntityService[menu.Category, *menu.Category]
	items      *EntityService[menu.Item, *menu.Item]
}

// NewMenuService creates a MenuService over the two stores.
func NewMenuService(categories ports.Store[menu.Category], items ports.Store[menu.Item], paging Paging, logger *slog.Logger) *MenuService {
	s := &MenuService{}
	s.categories = NewEntityService(categories, "menu_category", paging, logger,
		WithBeforeDelete[menu.Category](s.categoryUnused),
	)
	s.items = NewEntityService(items, "menu_item", paging, logger,
		WithBeforeWrite[menu.Item](s.categoryExists),
	)
	return s
}

// Categories returns the category service.
func (s *MenuService) Categories() ports.EntityService[menu.Category] {
	return s.categories
}

// Items returns the item service.
func (s *MenuService) Items() ports.EntityService[menu.Item] {
	return s.items
}

func (s *MenuService) categoryExists(ctx context.Context, item *menu.Item) error {
	_, err := s.categories.store.Get(ctx, item.CategoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("category_id", fmt.Sprintf("category %d does not exist", item.CategoryID))
	}
	return err
}

func (s *MenuService) categoryUnused(ctx context.Context, id int64) error {
	page, err := s.items.store.List(ctx, domain.ListParams{
		Filter:   domain.Filter{"category_id": strconv.FormatInt(id, 10)},
		Page:     1,
		PageSize: 1,
	})
	if err != nil {
		return err
	}
	if page.Total > 0 {
		return fmt.Errorf("%w: category %d still has %d items", domain.ErrConflict, id, page.Total)
	}
	return nil
}
