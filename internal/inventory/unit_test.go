package inventory

import (
	"errors"
	"testing"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
)

func TestUnitInventory_AddRemove(t *testing.T) {
	inv := NewUnitInventory()

	inv.Add(catalog.Egg, catalog.Regular)
	inv.Add(catalog.Milk, catalog.Gold)
	inv.Add(catalog.Egg, catalog.Iridium)

	if !inv.Exists(catalog.Egg) {
		t.Fatalf("Exists(Egg) = false after adding eggs")
	}

	// Поштучное хранилище выдаёт первый товар в порядке хранения,
	// качество не учитывается.
	removed := inv.Remove(catalog.Egg)
	if len(removed) != 1 {
		t.Fatalf("Remove returned %d products, want 1", len(removed))
	}
	if removed[0].Quality() != catalog.Regular {
		t.Fatalf("Remove returned %v quality, want regular (storage order)", removed[0].Quality())
	}

	removed = inv.Remove(catalog.Egg)
	if len(removed) != 1 || removed[0].Quality() != catalog.Iridium {
		t.Fatalf("second Remove must return the remaining iridium egg, got %v", removed)
	}

	if inv.Exists(catalog.Egg) {
		t.Fatalf("Exists(Egg) = true after removing all eggs")
	}
	if len(inv.Products()) != 1 {
		t.Fatalf("inventory must still hold the milk, got %v", inv.Products())
	}
}

func TestUnitInventory_RemoveAbsent(t *testing.T) {
	inv := NewUnitInventory()
	inv.Add(catalog.Milk, catalog.Regular)

	removed := inv.Remove(catalog.Wool)
	if len(removed) != 0 {
		t.Fatalf("Remove of absent product must return empty result, got %v", removed)
	}
}

func TestUnitInventory_BulkRejected(t *testing.T) {
	inv := NewUnitInventory()

	if err := inv.AddMany(catalog.Egg, catalog.Regular, 3); !errors.Is(err, ErrBulkUnsupported) {
		t.Fatalf("AddMany error = %v, want ErrBulkUnsupported", err)
	}
	if err := inv.AddMany(catalog.Egg, catalog.Regular, 1); !errors.Is(err, ErrBulkUnsupported) {
		t.Fatalf("AddMany with quantity 1 error = %v, want ErrBulkUnsupported", err)
	}

	if _, err := inv.RemoveMany(catalog.Egg, 2); !errors.Is(err, ErrBulkUnsupported) {
		t.Fatalf("RemoveMany error = %v, want ErrBulkUnsupported", err)
	}
}

func TestUnitInventory_ProductsStorageOrder(t *testing.T) {
	inv := NewUnitInventory()
	inv.Add(catalog.Wool, catalog.Regular)
	inv.Add(catalog.Egg, catalog.Gold)

	products := inv.Products()
	if len(products) != 2 {
		t.Fatalf("Products() returned %d items, want 2", len(products))
	}
	if products[0].Code() != catalog.Wool || products[1].Code() != catalog.Egg {
		t.Fatalf("Products() must preserve storage order, got %v", products)
	}
}
