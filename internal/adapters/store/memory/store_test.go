package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/store/memory"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/menu"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

var fixedNow = time.Date(2025, 8, 15, 16, 0, 0, 0, time.UTC)

func newItemStore(t *testing.T) ports.Store[menu.Item] {
	t.Helper()
	return memory.NewStore[menu.Item]("menu item", memory.WithClock(func() time.Time { return fixedNow }))
}

func seedItems(t *testing.T, s ports.Store[menu.Item], items ...menu.Item) []menu.Item {
	t.Helper()

	out := make([]menu.Item, 0, len(items))
	for i := range items {
		created, err := s.Create(context.Background(), &items[i])
		if err != nil {
			t.Fatalf("Create(%q) error: %v", items[i].Name, err)
		}
		out = append(out, *created)
	}
	return out
}

func TestStore_CreateAssignsMetadata(t *testing.T) {
	t.Parallel()
	s := newItemStore(t)

	in := menu.Item{Name: "Burger", CategoryID: 1, PriceCents: 1599}
	created, err := s.Create(context.Background(), &in)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}
	if !created.CreatedAt.Equal(fixedNow) || !created.UpdatedAt.Equal(fixedNow) {
		t.Errorf("timestamps = %v / %v, want %v", created.CreatedAt, created.UpdatedAt, fixedNow)
	}
	if in.ID != 0 {
		t.Errorf("Create() mutated its argument: ID = %d", in.ID)
	}

	second, _ := s.Create(context.Background(), &menu.Item{Name: "Fries", CategoryID: 1})
	if second.ID != 2 {
		t.Errorf("second ID = %d, want 2", second.ID)
	}
}

func TestStore_ReturnedValuesDoNotAlias(t *testing.T) {
	t.Parallel()
	s := newItemStore(t)

	created := seedItems(t, s, menu.Item{Name: "Burger", CategoryID: 1, Addons: []menu.Addon{{Name: "Bacon", PriceCents: 200}}})[0]

	got, err := s.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	got.Addons[0].Name = "Changed"

	again, _ := s.Get(context.Background(), created.ID)
	if again.Addons[0].Name != "Bacon" {
		t.Errorf("stored addon changed through returned value: %q", again.Addons[0].Name)
	}
}

func TestStore_GetUpdateDelete_NotFound(t *testing.T) {
	t.Parallel()
	s := newItemStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}

	missing := menu.Item{Meta: domain.Meta{ID: 42}, Name: "Ghost", CategoryID: 1}
	if _, err := s.Update(ctx, &missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_UpdateKeepsCreatedAt(t *testing.T) {
	t.Parallel()

	now := fixedNow
	s := memory.NewStore[menu.Item]("menu item", memory.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	created, _ := s.Create(ctx, &menu.Item{Name: "Burger", CategoryID: 1})

	now = fixedNow.Add(time.Hour)
	change := *created
	change.PriceCents = 1799
	change.CreatedAt = time.Time{}

	updated, err := s.Update(ctx, &change)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !updated.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", updated.CreatedAt, fixedNow)
	}
	if !updated.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", updated.UpdatedAt, now)
	}
	if updated.PriceCents != 1799 {
		t.Errorf("PriceCents = %d, want 1799", updated.PriceCents)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	s := newItemStore(t)
	ctx := context.Background()

	created := seedItems(t, s, menu.Item{Name: "Burger", CategoryID: 1})[0]
	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
}

func TestStore_List(t *testing.T) {
	t.Parallel()
	s := newItemStore(t)

	seedItems(t, s,
		menu.Item{Name: "Burger", CategoryID: 1, PriceCents: 1599, Available: true},
		menu.Item{Name: "Salad", CategoryID: 2, PriceCents: 999, Available: true},
		menu.Item{Name: "Fries", CategoryID: 1, PriceCents: 499, Available: false},
		menu.Item{Name: "Soup", CategoryID: 2, PriceCents: 10099, Available: true},
		menu.Item{Name: "Wings", CategoryID: 1, PriceCents: 1299, Available: true},
	)

	tests := []struct {
		name      string
		params    domain.ListParams
		wantNames []string
		wantTotal int
	}{
		{
			name:      "all in insertion order",
			params:    domain.ListParams{},
			wantNames: []string{"Burger", "Salad", "Fries", "Soup", "Wings"},
			wantTotal: 5,
		},
		{
			name:      "numeric filter",
			params:    domain.ListParams{Filter: domain.Filter{"category_id": "2"}},
			wantNames: []string{"Salad", "Soup"},
			wantTotal: 2,
		},
		{
			name:      "boolean filter",
			params:    domain.ListParams{Filter: domain.Filter{"available": "false"}},
			wantNames: []string{"Fries"},
			wantTotal: 1,
		},
		{
			name:      "combined filters",
			params:    domain.ListParams{Filter: domain.Filter{"category_id": "1", "available": "true"}},
			wantNames: []string{"Burger", "Wings"},
			wantTotal: 2,
		},
		{
			name:      "unknown field matches nothing",
			params:    domain.ListParams{Filter: domain.Filter{"colour": "red"}},
			wantNames: []string{},
			wantTotal: 0,
		},
		{
			name:      "numbers order numerically",
			params:    domain.ListParams{OrderBy: "price_cents"},
			wantNames: []string{"Fries", "Salad", "Wings", "Burger", "Soup"},
			wantTotal: 5,
		},
		{
			name:      "descending string order",
			params:    domain.ListParams{OrderBy: "name", Desc: true},
			wantNames: []string{"Wings", "Soup", "Salad", "Fries", "Burger"},
			wantTotal: 5,
		},
		{
			name:      "second page",
			params:    domain.ListParams{Page: 2, PageSize: 2},
			wantNames: []string{"Fries", "Soup"},
			wantTotal: 5,
		},
		{
			name:      "page past the end",
			params:    domain.ListParams{Page: 9, PageSize: 2},
			wantNames: []string{},
			wantTotal: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := s.List(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			if page.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", page.Total, tt.wantTotal)
			}

			got := make([]string, 0, len(page.Items))
			for _, item := range page.Items {
				got = append(got, item.Name)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("names = %v, want %v", got, tt.wantNames)
			}
			for i := range got {
				if got[i] != tt.wantNames[i] {
					t.Errorf("names = %v, want %v", got, tt.wantNames)
					break
				}
			}
		})
	}
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()
	s := newItemStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.List(ctx, domain.ListParams{}); !errors.Is(err, context.Canceled) {
		t.Errorf("List() error = %v, want context.Canceled", err)
	}
	if _, err := s.Create(ctx, &menu.Item{Name: "x", CategoryID: 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("Create() error = %v, want context.Canceled", err)
	}
}
