package inventory

import "github.com/mmeshcher/farmshop-system/internal/catalog"

// GradedInventory — хранилище с учётом количества и качества товара.
// Поддерживает групповые операции; при выдаче первым уходит товар высшего
// качества, при равном качестве — поступивший раньше.
type GradedInventory struct {
	stock []catalog.Product
}

// NewGradedInventory создаёт пустое градуированное хранилище.
func NewGradedInventory() *GradedInventory {
	return &GradedInventory{}
}

// Add кладёт в хранилище один товар указанного типа и качества.
func (inv *GradedInventory) Add(code catalog.Code, quality catalog.Quality) {
	inv.stock = append(inv.stock, catalog.NewProduct(code, quality))
}

// AddMany кладёт в хранилище quantity товаров указанного типа и качества.
// Нулевое количество ничего не меняет, отрицательное — ошибка ErrNegativeQuantity.
func (inv *GradedInventory) AddMany(code catalog.Code, quality catalog.Quality, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	for i := 0; i < quantity; i++ {
		inv.Add(code, quality)
	}
	return nil
}

// Exists сообщает, есть ли в хранилище хотя бы один товар указанного типа.
func (inv *GradedInventory) Exists(code catalog.Code) bool {
	for _, p := range inv.stock {
		if p.Code() == code {
			return true
		}
	}
	return false
}

// Remove забирает товар указанного типа наивысшего качества из имеющихся.
// При равном качестве уходит товар, поступивший раньше.
// Возвращает пустой список, если такого товара нет.
func (inv *GradedInventory) Remove(code catalog.Code) []catalog.Product {
	best := -1
	for i, p := range inv.stock {
		if p.Code() != code {
			continue
		}
		if best == -1 || p.Quality() > inv.stock[best].Quality() {
			best = i
		}
	}
	if best == -1 {
		return nil
	}

	removed := inv.stock[best]
	inv.stock = append(inv.stock[:best], inv.stock[best+1:]...)
	return []catalog.Product{removed}
}

// RemoveMany забирает до quantity товаров указанного типа, каждый раз выбирая
// товар наивысшего качества. Если запаса меньше, возвращается столько товаров,
// сколько есть; вызывающий, которому нужна вся партия целиком, должен заранее
// сверить StockedQuantity.
func (inv *GradedInventory) RemoveMany(code catalog.Code, quantity int) ([]catalog.Product, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	var removed []catalog.Product
	for i := 0; i < quantity; i++ {
		batch := inv.Remove(code)
		if len(batch) == 0 {
			break
		}
		removed = append(removed, batch[0])
	}
	return removed, nil
}

// Products возвращает снимок запаса, сгруппированный по типам в каноническом
// порядке каталога; внутри типа — в порядке поступления.
func (inv *GradedInventory) Products() []catalog.Product {
	out := make([]catalog.Product, 0, len(inv.stock))
	for _, code := range catalog.Codes() {
		for _, p := range inv.stock {
			if p.Code() == code {
				out = append(out, p)
			}
		}
	}
	return out
}

// StockedQuantity возвращает количество товара указанного типа в хранилище.
func (inv *GradedInventory) StockedQuantity(code catalog.Code) int {
	count := 0
	for _, p := range inv.stock {
		if p.Code() == code {
			count++
		}
	}
	return count
}
