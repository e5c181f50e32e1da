// Package sales реализует кассовый узел лавки: транзакции покупателей,
// менеджер транзакций и историю продаж.
package sales

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
	"github.com/mmeshcher/farmshop-system/internal/customer"
	"github.com/mmeshcher/farmshop-system/internal/receipt"
)

// Kind задаёт разновидность транзакции.
type Kind int

const (
	// KindBase — простая транзакция: каждая покупка отражается в чеке отдельной строкой.
	KindBase Kind = iota
	// KindCategorised — транзакция с группировкой покупок по типам товаров.
	KindCategorised
	// KindSpecialSale — категоризированная транзакция со скидками на отдельные типы товаров.
	KindSpecialSale
)

// ErrAlreadyFinalised возвращается при повторной попытке завершить транзакцию.
var ErrAlreadyFinalised = errors.New("transaction already finalised")

// Transaction фиксирует, какие товары покупает (или купил) покупатель.
//
// Пока транзакция активна, список покупок отражает текущую корзину
// покупателя. При завершении содержимое корзины замораживается как
// неизменяемый снимок, а сама корзина очищается. Завершение происходит
// ровно один раз.
type Transaction struct {
	kind      Kind
	customer  *customer.Customer
	discounts map[catalog.Code]int
	finalised bool
	snapshot  []catalog.Product
}

// New создаёт простую активную транзакцию для указанного покупателя.
func New(c *customer.Customer) *Transaction {
	return &Transaction{kind: KindBase, customer: c}
}

// NewCategorised создаёт активную транзакцию с группировкой покупок по типам.
func NewCategorised(c *customer.Customer) *Transaction {
	return &Transaction{kind: KindCategorised, customer: c}
}

// NewSpecialSale создаёт активную транзакцию распродажи: скидки задаются
// отображением тип товара -> процент скидки (от 0 до 100).
func NewSpecialSale(c *customer.Customer, discounts map[catalog.Code]int) *Transaction {
	copied := make(map[catalog.Code]int, len(discounts))
	for code, percent := range discounts {
		copied[code] = percent
	}
	return &Transaction{kind: KindSpecialSale, customer: c, discounts: copied}
}

// Kind возвращает разновидность транзакции.
func (t *Transaction) Kind() Kind {
	return t.kind
}

// Customer возвращает покупателя, с которым связана транзакция.
func (t *Transaction) Customer() *customer.Customer {
	return t.customer
}

// Finalised сообщает, завершена ли транзакция.
func (t *Transaction) Finalised() bool {
	return t.finalised
}

// Purchases возвращает покупки транзакции: содержимое корзины покупателя,
// пока транзакция активна, либо замороженный снимок после завершения.
func (t *Transaction) Purchases() []catalog.Product {
	if t.finalised {
		return append([]catalog.Product(nil), t.snapshot...)
	}
	return t.customer.Cart().Contents()
}

// Finalise завершает транзакцию: замораживает текущее содержимое корзины
// как итоговый список покупок и очищает корзину. Повторный вызов
// возвращает ErrAlreadyFinalised.
func (t *Transaction) Finalise() error {
	if t.finalised {
		return ErrAlreadyFinalised
	}

	t.snapshot = t.customer.Cart().Contents()
	t.customer.Cart().Clear()
	t.finalised = true
	return nil
}

// PurchasedTypes возвращает типы купленных товаров в каноническом порядке каталога.
func (t *Transaction) PurchasedTypes() []catalog.Code {
	var types []catalog.Code
	for _, code := range catalog.Codes() {
		if t.Quantity(code) > 0 {
			types = append(types, code)
		}
	}
	return types
}

// PurchasesByType группирует покупки транзакции по типу товара.
func (t *Transaction) PurchasesByType() map[catalog.Code][]catalog.Product {
	grouped := make(map[catalog.Code][]catalog.Product)
	for _, p := range t.Purchases() {
		grouped[p.Code()] = append(grouped[p.Code()], p)
	}
	return grouped
}

// Quantity возвращает количество купленных товаров указанного типа.
func (t *Transaction) Quantity(code catalog.Code) int {
	count := 0
	for _, p := range t.Purchases() {
		if p.Code() == code {
			count++
		}
	}
	return count
}

// DiscountPercent возвращает скидку на указанный тип товара в процентах.
// Для транзакций без скидок всегда 0.
func (t *Transaction) DiscountPercent(code catalog.Code) int {
	return t.discounts[code]
}

// Subtotal возвращает стоимость всех покупок указанного типа в центах.
// Для транзакций распродажи сумма уменьшается на процент скидки
// с отбрасыванием дробной части.
func (t *Transaction) Subtotal(code catalog.Code) int {
	subtotal := t.Quantity(code) * code.BasePrice()
	if t.kind == KindSpecialSale {
		subtotal -= subtotal * t.DiscountPercent(code) / 100
	}
	return subtotal
}

// Total возвращает полную стоимость транзакции в центах, со скидками,
// если они есть.
func (t *Transaction) Total() int {
	if t.kind == KindBase {
		total := 0
		for _, p := range t.Purchases() {
			total += p.BasePrice()
		}
		return total
	}

	total := 0
	for _, code := range t.PurchasedTypes() {
		total += t.Subtotal(code)
	}
	return total
}

// TotalSaved возвращает экономию покупателя от скидок в центах.
func (t *Transaction) TotalSaved() int {
	if t.kind != KindSpecialSale {
		return 0
	}

	full := 0
	for _, code := range t.PurchasedTypes() {
		full += t.Quantity(code) * code.BasePrice()
	}
	return full - t.Total()
}

// Receipt строит текстовый чек транзакции. Для ещё не завершённой
// транзакции возвращается заглушка, а не частичные суммы.
func (t *Transaction) Receipt() string {
	if !t.finalised {
		return receipt.ActivePlaceholder()
	}

	if t.kind == KindBase {
		purchases := t.Purchases()
		rows := make([][]string, 0, len(purchases))
		for _, p := range purchases {
			rows = append(rows, []string{p.DisplayName(), receipt.FormatPrice(p.BasePrice())})
		}
		return receipt.Format([]string{"Item", "Price"}, rows,
			receipt.FormatPrice(t.Total()), t.customer.Name())
	}

	headings := []string{"Item", "Qty", "Price (ea.)", "Subtotal"}
	var rows [][]string
	for _, code := range t.PurchasedTypes() {
		row := []string{
			code.DisplayName(),
			strconv.Itoa(t.Quantity(code)),
			receipt.FormatPrice(code.BasePrice()),
			receipt.FormatPrice(t.Subtotal(code)),
		}
		if percent := t.DiscountPercent(code); percent > 0 {
			row = append(row, fmt.Sprintf("Discount applied! %d%% off %s", percent, code.DisplayName()))
		}
		rows = append(rows, row)
	}

	if saved := t.TotalSaved(); saved > 0 {
		return receipt.FormatWithSavings(headings, rows,
			receipt.FormatPrice(t.Total()), t.customer.Name(), receipt.FormatPrice(saved))
	}
	return receipt.Format(headings, rows, receipt.FormatPrice(t.Total()), t.customer.Name())
}
