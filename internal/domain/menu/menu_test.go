package menu

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false")
	}
	return verr.Fields
}

func TestCategory_Validate(t *testing.T) {
	t.Parallel()

	ok := Category{Name: "Mains"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	fields := validationFields(t, (&Category{SortOrder: -1}).Validate())
	for _, f := range []string{"name", "sort_order"} {
		if _, found := fields[f]; !found {
			t.Errorf("Fields missing %q, got %v", f, fields)
		}
	}
}

func TestItem_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		item  Item
		field string
	}{
		{name: "name required", item: Item{CategoryID: 1}, field: "name"},
		{name: "category required", item: Item{Name: "Burger"}, field: "category_id"},
		{name: "negative price", item: Item{Name: "Burger", CategoryID: 1, PriceCents: -5}, field: "price_cents"},
		{
			name:  "blank addon name",
			item:  Item{Name: "Burger", CategoryID: 1, Addons: []Addon{{Name: " "}}},
			field: "addons[0].name",
		},
		{
			name:  "duplicate addon",
			item:  Item{Name: "Burger", CategoryID: 1, Addons: []Addon{{Name: "Bacon"}, {Name: "bacon"}}},
			field: "addons[1].name",
		},
		{
			name:  "negative addon price",
			item:  Item{Name: "Burger", CategoryID: 1, Addons: []Addon{{Name: "Cheese", PriceCents: -1}}},
			field: "addons[0].price_cents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fields := validationFields(t, tt.item.Validate())
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.field, fields)
			}
		})
	}
}

func TestItem_Validate_Valid(t *testing.T) {
	t.Parallel()

	item := Item{
		Name:       "Burger",
		CategoryID: 2,
		PriceCents: 1599,
		Addons:     []Addon{{Name: "Bacon", PriceCents: 250}, {Name: "Cheese", PriceCents: 150}},
	}
	if err := item.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
