// Package store связывает склад, адресную книгу и кассу в единую лавку.
package store

import (
	"errors"
	"sync"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
	"github.com/mmeshcher/farmshop-system/internal/customer"
	"github.com/mmeshcher/farmshop-system/internal/inventory"
	"github.com/mmeshcher/farmshop-system/internal/sales"
)

// ErrInvalidQuantity возвращается при попытке положить в корзину
// меньше одного товара.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Store — корневой агрегат лавки: склад, адресная книга покупателей,
// менеджер транзакций и история продаж. Все зависимости передаются явно,
// глобального состояния нет.
//
// HTTP-обработчики вызывают методы лавки из разных горутин, поэтому все
// операции сериализуются общим мьютексом: перенос товара со склада
// в корзину не атомарен сам по себе.
type Store struct {
	mu        sync.Mutex
	inventory inventory.Inventory
	customers *customer.AddressBook
	manager   *sales.Manager
	history   *sales.History
}

// New создаёт лавку с переданным складом и адресной книгой.
func New(inv inventory.Inventory, book *customer.AddressBook) *Store {
	return &Store{
		inventory: inv,
		customers: book,
		manager:   sales.NewManager(),
		history:   sales.NewHistory(),
	}
}

// SaveCustomer сохраняет покупателя в адресной книге лавки.
func (s *Store) SaveCustomer(c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.customers.Add(c)
}

// Customer ищет покупателя по имени и телефону.
func (s *Store) Customer(name, phone string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.customers.Find(name, phone)
}

// Customers возвращает всех покупателей из адресной книги.
func (s *Store) Customers() []*customer.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.customers.All()
}

// StockProduct кладёт на склад один товар указанного типа и качества.
func (s *Store) StockProduct(code catalog.Code, quality catalog.Quality) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inventory.Add(code, quality)
}

// StockProducts кладёт на склад партию товара. Склады без поддержки
// групповых операций возвращают inventory.ErrBulkUnsupported, отрицательное
// количество — inventory.ErrNegativeQuantity.
func (s *Store) StockProducts(code catalog.Code, quality catalog.Quality, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inventory.AddMany(code, quality, quantity)
}

// Stock возвращает снимок всего запаса склада.
func (s *Store) Stock() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inventory.Products()
}

// StartTransaction делает переданную транзакцию текущей.
// Возвращает sales.ErrTransactionInProgress, если другая ещё не закрыта.
func (s *Store) StartTransaction(t *sales.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.manager.Begin(t)
}

// AddToCart пытается перенести один товар указанного типа со склада
// в корзину покупателя текущей транзакции и возвращает число перенесённых
// товаров: 0, если товара нет на складе, иначе 1.
func (s *Store) AddToCart(code catalog.Code) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.manager.HasOngoing() {
		return 0, sales.ErrNoTransaction
	}

	removed := s.inventory.Remove(code)
	if len(removed) == 0 {
		return 0, nil
	}

	if err := s.manager.RegisterPendingPurchase(removed[0]); err != nil {
		return 0, err
	}
	return 1, nil
}

// AddToCartMany пытается перенести quantity товаров указанного типа со
// склада в корзину покупателя. Если запаса меньше, переносится столько,
// сколько есть: недобор — не ошибка, возвращается фактическое число
// перенесённых товаров.
func (s *Store) AddToCartMany(code catalog.Code, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.manager.HasOngoing() {
		return 0, sales.ErrNoTransaction
	}
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}

	removed, err := s.inventory.RemoveMany(code, quantity)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, p := range removed {
		if err := s.manager.RegisterPendingPurchase(p); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Checkout закрывает текущую транзакцию. Непустая транзакция записывается
// в историю продаж; транзакция без покупок не записывается. Возвращает
// признак того, что продажа попала в историю.
func (s *Store) Checkout() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.manager.Close()
	if err != nil {
		return false, err
	}

	if len(t.Purchases()) == 0 {
		return false, nil
	}

	s.history.Record(t)
	return true, nil
}

// LastReceipt возвращает чек последней записанной продажи.
func (s *Store) LastReceipt() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.history.Last()
	if err != nil {
		return "", err
	}
	return t.Receipt(), nil
}

// GrossEarnings возвращает суммарную выручку лавки в центах.
func (s *Store) GrossEarnings() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.GrossEarnings()
}

// GrossEarningsFor возвращает выручку от товара указанного типа в центах.
func (s *Store) GrossEarningsFor(code catalog.Code) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.GrossEarningsFor(code)
}

// TransactionCount возвращает число записанных продаж.
func (s *Store) TransactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.TransactionCount()
}

// ProductsSold возвращает общее число проданных товаров.
func (s *Store) ProductsSold() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.ProductsSold()
}

// ProductsSoldFor возвращает число проданных товаров указанного типа.
func (s *Store) ProductsSoldFor(code catalog.Code) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.ProductsSoldFor(code)
}

// MostPopularProduct возвращает самый продаваемый тип товара.
func (s *Store) MostPopularProduct() catalog.Code {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.MostPopularProduct()
}

// AverageSpendPerVisit возвращает средний чек в центах.
func (s *Store) AverageSpendPerVisit() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.AverageSpendPerVisit()
}

// AverageProductDiscount возвращает среднюю скидку на тип товара в процентах.
func (s *Store) AverageProductDiscount(code catalog.Code) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.AverageProductDiscount(code)
}
