package inventory

import (
	"errors"
	"testing"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
)

func TestGradedInventory_RemoveHighestQualityFirst(t *testing.T) {
	inv := NewGradedInventory()
	inv.Add(catalog.Egg, catalog.Regular)
	inv.Add(catalog.Egg, catalog.Iridium)

	removed := inv.Remove(catalog.Egg)
	if len(removed) != 1 {
		t.Fatalf("Remove returned %d products, want 1", len(removed))
	}
	if removed[0].Quality() != catalog.Iridium {
		t.Fatalf("Remove returned %v quality, want iridium", removed[0].Quality())
	}
}

func TestGradedInventory_RemoveManyDescendingQuality(t *testing.T) {
	inv := NewGradedInventory()
	inv.Add(catalog.Egg, catalog.Silver)
	inv.Add(catalog.Egg, catalog.Iridium)
	inv.Add(catalog.Milk, catalog.Gold)
	inv.Add(catalog.Egg, catalog.Gold)

	removed, err := inv.RemoveMany(catalog.Egg, 3)
	if err != nil {
		t.Fatalf("RemoveMany error: %v", err)
	}
	if len(removed) != 3 {
		t.Fatalf("RemoveMany returned %d products, want 3", len(removed))
	}

	want := []catalog.Quality{catalog.Iridium, catalog.Gold, catalog.Silver}
	for i, q := range want {
		if removed[i].Quality() != q {
			t.Fatalf("removed[%d].Quality() = %v, want %v", i, removed[i].Quality(), q)
		}
	}

	if inv.Exists(catalog.Egg) {
		t.Fatalf("all eggs must be removed")
	}
	if inv.StockedQuantity(catalog.Milk) != 1 {
		t.Fatalf("milk stock must be untouched")
	}
}

func TestGradedInventory_RemoveManyPartial(t *testing.T) {
	inv := NewGradedInventory()
	inv.Add(catalog.Jam, catalog.Regular)
	inv.Add(catalog.Jam, catalog.Regular)

	removed, err := inv.RemoveMany(catalog.Jam, 5)
	if err != nil {
		t.Fatalf("RemoveMany error: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("RemoveMany with short stock returned %d products, want 2", len(removed))
	}
}

func TestGradedInventory_AddMany(t *testing.T) {
	inv := NewGradedInventory()

	if err := inv.AddMany(catalog.Wool, catalog.Gold, 4); err != nil {
		t.Fatalf("AddMany error: %v", err)
	}
	if got := inv.StockedQuantity(catalog.Wool); got != 4 {
		t.Fatalf("StockedQuantity = %d, want 4", got)
	}

	if err := inv.AddMany(catalog.Wool, catalog.Gold, 0); err != nil {
		t.Fatalf("AddMany with zero quantity must be a no-op, got error: %v", err)
	}
	if got := inv.StockedQuantity(catalog.Wool); got != 4 {
		t.Fatalf("StockedQuantity after zero add = %d, want 4", got)
	}

	if err := inv.AddMany(catalog.Wool, catalog.Gold, -1); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("AddMany with negative quantity error = %v, want ErrNegativeQuantity", err)
	}
}

func TestGradedInventory_ProductsGroupedByCatalogOrder(t *testing.T) {
	inv := NewGradedInventory()
	inv.Add(catalog.Milk, catalog.Regular)
	inv.Add(catalog.Egg, catalog.Gold)
	inv.Add(catalog.Milk, catalog.Silver)

	products := inv.Products()
	want := []catalog.Code{catalog.Egg, catalog.Milk, catalog.Milk}

	if len(products) != len(want) {
		t.Fatalf("Products() returned %d items, want %d", len(products), len(want))
	}
	for i, code := range want {
		if products[i].Code() != code {
			t.Fatalf("products[%d].Code() = %v, want %v", i, products[i].Code(), code)
		}
	}

	// Внутри типа сохраняется порядок поступления.
	if products[1].Quality() != catalog.Regular || products[2].Quality() != catalog.Silver {
		t.Fatalf("milk entries must keep arrival order, got %v", products)
	}
}

func TestGradedInventory_RemoveAbsent(t *testing.T) {
	inv := NewGradedInventory()

	if removed := inv.Remove(catalog.Egg); len(removed) != 0 {
		t.Fatalf("Remove on empty inventory must return empty result, got %v", removed)
	}

	removed, err := inv.RemoveMany(catalog.Egg, 3)
	if err != nil {
		t.Fatalf("RemoveMany error: %v", err)
	}
	if len(removed) != 0 {
		t.Fatalf("RemoveMany on empty inventory must return empty result, got %v", removed)
	}
}
