package customer

import "github.com/mmeshcher/farmshop-system/internal/catalog"

// Cart — корзина покупателя. Товары добавляются по одному и хранятся
// в порядке добавления; единственная операция изменения кроме добавления —
// полная очистка.
type Cart struct {
	items []catalog.Product
}

// NewCart создаёт пустую корзину.
func NewCart() *Cart {
	return &Cart{}
}

// Add кладёт товар в корзину.
func (c *Cart) Add(p catalog.Product) {
	c.items = append(c.items, p)
}

// Clear опустошает корзину.
func (c *Cart) Clear() {
	c.items = nil
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Contents возвращает копию содержимого корзины в порядке добавления.
func (c *Cart) Contents() []catalog.Product {
	return append([]catalog.Product(nil), c.items...)
}
