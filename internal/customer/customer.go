// Package customer содержит покупателей лавки, их корзины и адресную книгу.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmeshcher/farmshop-system/internal/validation"
)

// ErrDuplicateCustomer возвращается при попытке повторно сохранить покупателя.
var (
	ErrDuplicateCustomer = errors.New("customer already exists")
	// ErrCustomerNotFound возвращается, если покупатель не найден в адресной книге.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrEmptyName возвращается при пустом имени покупателя.
	ErrEmptyName = errors.New("customer name must not be empty")
	// ErrInvalidPhone возвращается при некорректном номере телефона.
	ErrInvalidPhone = errors.New("invalid phone number")
)

// Customer хранит данные покупателя и его корзину.
// Покупатели равны, когда совпадают имя и телефон; адрес не учитывается.
type Customer struct {
	name    string
	phone   string
	address string
	cart    *Cart
}

// New создаёт покупателя с указанными данными. Имя и адрес очищаются от
// окружающих пробелов; имя не может быть пустым, телефон проверяется
// на корректность.
func New(name, phone, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if !validation.IsValidPhoneNumber(phone) {
		return nil, ErrInvalidPhone
	}

	return &Customer{
		name:    name,
		phone:   phone,
		address: strings.TrimSpace(address),
		cart:    NewCart(),
	}, nil
}

// Name возвращает имя покупателя.
func (c *Customer) Name() string {
	return c.name
}

// Phone возвращает номер телефона покупателя.
func (c *Customer) Phone() string {
	return c.phone
}

// Address возвращает адрес покупателя.
func (c *Customer) Address() string {
	return c.address
}

// Cart возвращает корзину покупателя.
func (c *Customer) Cart() *Cart {
	return c.cart
}

// Equal сообщает, описывают ли записи одного и того же покупателя.
// Имена сравниваются с учётом регистра.
func (c *Customer) Equal(other *Customer) bool {
	return other != nil && c.name == other.name && c.phone == other.phone
}

func (c *Customer) String() string {
	return fmt.Sprintf("Name: %s | Phone Number: %s | Address: %s", c.name, c.phone, c.address)
}
