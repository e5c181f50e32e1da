package sales

import (
	"errors"
	"math"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
)

// ErrEmptyHistory возвращается при запросе к пустой истории продаж.
var ErrEmptyHistory = errors.New("transaction history is empty")

// History — журнал завершённых транзакций в порядке их записи.
// По журналу считается статистика продаж: выручка, популярность товаров,
// средние показатели.
type History struct {
	record []*Transaction
}

// NewHistory создаёт пустую историю продаж.
func NewHistory() *History {
	return &History{}
}

// Record добавляет транзакцию в журнал. Транзакция должна быть уже
// завершена; повторная запись одной и той же транзакции не отслеживается.
func (h *History) Record(t *Transaction) {
	h.record = append(h.record, t)
}

// Last возвращает последнюю записанную транзакцию.
// Возвращает ErrEmptyHistory, если журнал пуст.
func (h *History) Last() (*Transaction, error) {
	if len(h.record) == 0 {
		return nil, ErrEmptyHistory
	}
	return h.record[len(h.record)-1], nil
}

// GrossEarnings возвращает суммарную выручку по всем транзакциям в центах.
// Каждая транзакция учитывается по её собственному итогу, со скидками.
func (h *History) GrossEarnings() int {
	earnings := 0
	for _, t := range h.record {
		earnings += t.Total()
	}
	return earnings
}

// GrossEarningsFor возвращает выручку от продаж товара указанного типа
// в центах, по подытогам каждой транзакции.
func (h *History) GrossEarningsFor(code catalog.Code) int {
	earnings := 0
	for _, t := range h.record {
		earnings += t.Subtotal(code)
	}
	return earnings
}

// TransactionCount возвращает число записанных транзакций.
func (h *History) TransactionCount() int {
	return len(h.record)
}

// ProductsSold возвращает общее число проданных товаров.
func (h *History) ProductsSold() int {
	sold := 0
	for _, t := range h.record {
		sold += len(t.Purchases())
	}
	return sold
}

// ProductsSoldFor возвращает число проданных товаров указанного типа.
func (h *History) ProductsSoldFor(code catalog.Code) int {
	sold := 0
	for _, t := range h.record {
		sold += t.Quantity(code)
	}
	return sold
}

// HighestGrossingTransaction возвращает транзакцию с наибольшим итогом.
// При равных итогах побеждает записанная раньше.
// Возвращает ErrEmptyHistory, если журнал пуст.
func (h *History) HighestGrossingTransaction() (*Transaction, error) {
	if len(h.record) == 0 {
		return nil, ErrEmptyHistory
	}

	best := h.record[0]
	for _, t := range h.record[1:] {
		if t.Total() > best.Total() {
			best = t
		}
	}
	return best, nil
}

// MostPopularProduct возвращает тип товара с наибольшим числом продаж
// за всю историю. При равенстве побеждает тип, объявленный в каталоге раньше.
func (h *History) MostPopularProduct() catalog.Code {
	codes := catalog.Codes()
	mostPopular := codes[0]
	bestCount := h.ProductsSoldFor(mostPopular)

	for _, code := range codes[1:] {
		if count := h.ProductsSoldFor(code); count > bestCount {
			mostPopular = code
			bestCount = count
		}
	}
	return mostPopular
}

// AverageSpendPerVisit возвращает средний чек в центах, округлённый
// до двух знаков после запятой. Для пустой истории — 0.
func (h *History) AverageSpendPerVisit() float64 {
	if len(h.record) == 0 {
		return 0
	}
	return round2(float64(h.GrossEarnings()) / float64(len(h.record)))
}

// AverageProductDiscount возвращает среднюю скидку на указанный тип товара
// в процентах по всем записанным транзакциям; транзакции без скидок
// учитываются как 0. Для пустой истории — 0.
func (h *History) AverageProductDiscount(code catalog.Code) float64 {
	if len(h.record) == 0 {
		return 0
	}

	total := 0
	for _, t := range h.record {
		total += t.DiscountPercent(code)
	}
	return round2(float64(total) / float64(len(h.record)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
