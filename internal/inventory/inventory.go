// Package inventory реализует хранилища товаров лавки.
//
// Хранилище бывает двух видов: поштучное (UnitInventory), работающее только
// с одиночными операциями, и градуированное (GradedInventory), поддерживающее
// групповые операции и выдачу товара в порядке убывания качества.
package inventory

import (
	"errors"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
)

// ErrBulkUnsupported возвращается, когда хранилище не поддерживает групповые операции.
var (
	ErrBulkUnsupported = errors.New("inventory does not support bulk operations")
	// ErrNegativeQuantity возвращается при отрицательном количестве товара.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// Inventory описывает контракт хранилища товаров.
type Inventory interface {
	// Add кладёт в хранилище один товар указанного типа и качества.
	Add(code catalog.Code, quality catalog.Quality)

	// AddMany кладёт в хранилище quantity товаров указанного типа и качества.
	// Хранилища без поддержки групповых операций возвращают ErrBulkUnsupported.
	AddMany(code catalog.Code, quality catalog.Quality, quantity int) error

	// Exists сообщает, есть ли в хранилище хотя бы один товар указанного типа.
	Exists(code catalog.Code) bool

	// Remove забирает из хранилища один товар указанного типа.
	// Возвращает пустой список, если такого товара нет.
	Remove(code catalog.Code) []catalog.Product

	// RemoveMany забирает из хранилища до quantity товаров указанного типа.
	// Хранилища без поддержки групповых операций возвращают ErrBulkUnsupported.
	RemoveMany(code catalog.Code, quantity int) ([]catalog.Product, error)

	// Products возвращает снимок всего текущего запаса.
	Products() []catalog.Product
}
