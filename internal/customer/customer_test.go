package customer

import (
	"errors"
	"testing"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
)

func TestNewCustomerValidation(t *testing.T) {
	tests := []struct {
		name     string
		custName string
		phone    string
		wantErr  error
	}{
		{
			name:     "valid",
			custName: "Alice",
			phone:    "79001234567",
		},
		{
			name:     "empty name",
			custName: "   ",
			phone:    "79001234567",
			wantErr:  ErrEmptyName,
		},
		{
			name:     "bad phone",
			custName: "Alice",
			phone:    "not-a-phone",
			wantErr:  ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.custName, tt.phone, "Green Lane 1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
		})
	}
}

func TestNewCustomerTrimsWhitespace(t *testing.T) {
	c, err := New("  Bob  ", "123456", "  Hill Road 7  ")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if c.Name() != "Bob" {
		t.Fatalf("Name() = %q, want %q", c.Name(), "Bob")
	}
	if c.Address() != "Hill Road 7" {
		t.Fatalf("Address() = %q, want %q", c.Address(), "Hill Road 7")
	}
}

func TestCustomerEqual(t *testing.T) {
	a, _ := New("Alice", "123456", "Green Lane 1")
	b, _ := New("Alice", "123456", "Another Street 9")
	c, _ := New("alice", "123456", "Green Lane 1")
	d, _ := New("Alice", "654321", "Green Lane 1")

	if !a.Equal(b) {
		t.Fatalf("customers with same name and phone must be equal regardless of address")
	}
	if a.Equal(c) {
		t.Fatalf("customer names are case sensitive")
	}
	if a.Equal(d) {
		t.Fatalf("customers with different phones must not be equal")
	}
	if a.Equal(nil) {
		t.Fatalf("customer must not be equal to nil")
	}
}

func TestCartAppendAndClear(t *testing.T) {
	cart := NewCart()

	if !cart.IsEmpty() {
		t.Fatalf("new cart must be empty")
	}

	cart.Add(catalog.NewProduct(catalog.Egg, catalog.Regular))
	cart.Add(catalog.NewProduct(catalog.Milk, catalog.Gold))

	contents := cart.Contents()
	if len(contents) != 2 {
		t.Fatalf("Contents() returned %d items, want 2", len(contents))
	}
	if contents[0].Code() != catalog.Egg || contents[1].Code() != catalog.Milk {
		t.Fatalf("cart must keep insertion order, got %v", contents)
	}

	// Копия содержимого не должна влиять на корзину.
	contents[0] = catalog.NewProduct(catalog.Wool, catalog.Iridium)
	if cart.Contents()[0].Code() != catalog.Egg {
		t.Fatalf("Contents() must return a copy")
	}

	cart.Clear()
	if !cart.IsEmpty() {
		t.Fatalf("cart must be empty after Clear")
	}
}
