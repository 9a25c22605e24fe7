package catalog

import (
	"testing"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
)

func TestGroupByBrand(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Gari", Brand: "Tropical Sun"},
		{ID: "2", Name: "Cup Noodles", Brand: "Nissin"},
		{ID: "3", Name: "Garam Massala", Brand: "Lalah's"},
		{ID: "4", Name: "Dal Makhani", Brand: "Lalah's"},
	}

	groups := GroupByBrand(products)

	if len(groups) != 3 {
		t.Fatalf("expected 3 brand groups, got %d", len(groups))
	}

	// Sorted by brand name.
	wantBrands := []string{"Lalah's", "Nissin", "Tropical Sun"}
	for i, want := range wantBrands {
		if groups[i].Brand != want {
			t.Fatalf("expected brand %q at index %d, got %q", want, i, groups[i].Brand)
		}
	}

	lalahs := groups[0]
	if len(lalahs.Products) != 2 {
		t.Fatalf("expected 2 Lalah's products, got %d", len(lalahs.Products))
	}
	if lalahs.Products[0].ID != "3" || lalahs.Products[1].ID != "4" {
		t.Fatalf("product order within a group must be preserved: %+v", lalahs.Products)
	}
}

func TestGroupByBrand_FallsBackToOther(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Mystery Item"},
		{ID: "2", Name: "Cup Noodles", Brand: "Nissin"},
	}

	groups := GroupByBrand(products)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	var found bool
	for _, g := range groups {
		if g.Brand == "Other" {
			found = true
			if len(g.Products) != 1 || g.Products[0].ID != "1" {
				t.Fatalf("unexpected Other group: %+v", g.Products)
			}
		}
	}
	if !found {
		t.Fatal("blank brand must group under Other")
	}
}

func TestGroupByBrand_Empty(t *testing.T) {
	groups := GroupByBrand(nil)
	if len(groups) != 0 {
		t.Fatalf("expected no groups for empty catalog, got %d", len(groups))
	}
}
