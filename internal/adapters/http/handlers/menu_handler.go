package handlers

import (
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/menu"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// CategoryHandler handles HTTP requests for menu categories.
type CategoryHandler struct {
	*Resource[menu.Category, dto.CategoryResponse]
}

// NewCategoryHandler creates a new CategoryHandler from the menu service.
func NewCategoryHandler(svc ports.MenuService) *CategoryHandler {
	return &CategoryHandler{
		Resource: newResource(svc.Categories(),
			decoder(plain((*dto.CategoryRequest).ToEntity)),
			dto.ToCategoryResponse,
			listConfig{orderBy: "sort_order"},
			nil,
		),
	}
}

// ItemHandler handles HTTP requests for menu items.
type ItemHandler struct {
	*Resource[menu.Item, dto.ItemResponse]
}

// NewItemHandler creates a new ItemHandler from the menu service.
func NewItemHandler(svc ports.MenuService) *ItemHandler {
	return &ItemHandler{
		Resource: newResource(svc.Items(),
			decoder(plain((*dto.ItemRequest).ToEntity)),
			dto.ToItemResponse,
			listConfig{
				orderBy: "name",
				filters: []queryFilter{idFilter("category_id"), boolFilter("available")},
			},
			nil,
		),
	}
}
