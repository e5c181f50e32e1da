package inventory

import "github.com/mmeshcher/farmshop-system/internal/catalog"

// UnitInventory — простейшее хранилище, работающее с товарами строго по одному.
// Групповые операции не поддерживаются.
type UnitInventory struct {
	stock []catalog.Product
}

// NewUnitInventory создаёт пустое поштучное хранилище.
func NewUnitInventory() *UnitInventory {
	return &UnitInventory{}
}

// Add кладёт в хранилище один товар указанного типа и качества.
func (inv *UnitInventory) Add(code catalog.Code, quality catalog.Quality) {
	inv.stock = append(inv.stock, catalog.NewProduct(code, quality))
}

// AddMany всегда возвращает ErrBulkUnsupported: поштучное хранилище
// принимает товары только по одному.
func (inv *UnitInventory) AddMany(code catalog.Code, quality catalog.Quality, quantity int) error {
	return ErrBulkUnsupported
}

// Exists сообщает, есть ли в хранилище хотя бы один товар указанного типа.
func (inv *UnitInventory) Exists(code catalog.Code) bool {
	for _, p := range inv.stock {
		if p.Code() == code {
			return true
		}
	}
	return false
}

// Remove забирает первый по порядку хранения товар указанного типа.
// Возвращает пустой список, если такого товара нет.
func (inv *UnitInventory) Remove(code catalog.Code) []catalog.Product {
	for i, p := range inv.stock {
		if p.Code() == code {
			inv.stock = append(inv.stock[:i], inv.stock[i+1:]...)
			return []catalog.Product{p}
		}
	}
	return nil
}

// RemoveMany всегда возвращает ErrBulkUnsupported: поштучное хранилище
// выдаёт товары только по одному.
func (inv *UnitInventory) RemoveMany(code catalog.Code, quantity int) ([]catalog.Product, error) {
	return nil, ErrBulkUnsupported
}

// Products возвращает снимок запаса в порядке поступления товаров.
func (inv *UnitInventory) Products() []catalog.Product {
	return append([]catalog.Product(nil), inv.stock...)
}
