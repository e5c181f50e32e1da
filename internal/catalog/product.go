package catalog

import "fmt"

// Product представляет один экземпляр товара: тип и качество.
// Значение неизменяемо после создания; два товара равны, когда совпадают
// их тип и качество.
type Product struct {
	code    Code
	quality Quality
}

// NewProduct создаёт экземпляр товара указанного типа и качества.
func NewProduct(code Code, quality Quality) Product {
	return Product{code: code, quality: quality}
}

// Code возвращает тип товара.
func (p Product) Code() Code {
	return p.code
}

// Quality возвращает качество товара.
func (p Product) Quality() Quality {
	return p.quality
}

// BasePrice возвращает базовую цену товара в центах.
func (p Product) BasePrice() int {
	return p.code.BasePrice()
}

// DisplayName возвращает отображаемое название товара.
func (p Product) DisplayName() string {
	return p.code.DisplayName()
}

func (p Product) String() string {
	return fmt.Sprintf("%s: %dc *%s*", p.DisplayName(), p.BasePrice(), p.quality)
}
