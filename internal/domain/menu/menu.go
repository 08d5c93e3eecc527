// Package menu models menu categories and the items listed under them.
package menu

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
)

// Category groups menu items ("Starters", "Mains").
type Category struct {
	domain.Meta
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// Validate checks business rules for the Category entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Category) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if c.SortOrder < 0 {
		fields["sort_order"] = fmt.Sprintf("must not be negative, got %d", c.SortOrder)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Addon is an optional extra that can be ordered with an item.
type Addon struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// Item is a dish or drink on the menu.
type Item struct {
	domain.Meta
	CategoryID  int64   `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceCents  int64   `json:"price_cents"`
	ImageURL    string  `json:"image_url"`
	Available   bool    `json:"available"`
	Addons      []Addon `json:"addons"`
}

// Validate checks business rules for the Item entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (i *Item) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(i.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if i.CategoryID <= 0 {
		fields["category_id"] = fmt.Sprintf("must be positive, got %d", i.CategoryID)
	}
	if i.PriceCents < 0 {
		fields["price_cents"] = fmt.Sprintf("must not be negative, got %d", i.PriceCents)
	}

	seen := make(map[string]bool, len(i.Addons))
	for n, a := range i.Addons {
		key := fmt.Sprintf("addons[%d]", n)
		name := strings.ToLower(strings.TrimSpace(a.Name))
		switch {
		case name == "":
			fields[key+".name"] = domain.MsgRequired
		case seen[name]:
			fields[key+".name"] = fmt.Sprintf("duplicate addon %q", a.Name)
		}
		seen[name] = true
		if a.PriceCents < 0 {
			fields[key+".price_cents"] = fmt.Sprintf("must not be negative, got %d", a.PriceCents)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
