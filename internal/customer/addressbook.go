package customer

// AddressBook хранит записи обо всех покупателях лавки.
type AddressBook struct {
	customers []*Customer
}

// NewAddressBook создаёт пустую адресную книгу.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Add сохраняет покупателя в адресной книге.
// Возвращает ErrDuplicateCustomer, если такой покупатель уже записан.
func (b *AddressBook) Add(c *Customer) error {
	if b.Contains(c) {
		return ErrDuplicateCustomer
	}
	b.customers = append(b.customers, c)
	return nil
}

// Contains сообщает, есть ли покупатель в адресной книге.
func (b *AddressBook) Contains(c *Customer) bool {
	for _, existing := range b.customers {
		if existing.Equal(c) {
			return true
		}
	}
	return false
}

// Find ищет покупателя по имени и телефону.
// Возвращает ErrCustomerNotFound, если такого покупателя нет.
func (b *AddressBook) Find(name, phone string) (*Customer, error) {
	for _, c := range b.customers {
		if c.Name() == name && c.Phone() == phone {
			return c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// All возвращает копию списка всех покупателей в порядке добавления.
func (b *AddressBook) All() []*Customer {
	return append([]*Customer(nil), b.customers...)
}
