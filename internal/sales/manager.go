package sales

import (
	"errors"

	"github.com/mmeshcher/farmshop-system/internal/catalog"
)

// ErrTransactionInProgress возвращается при попытке начать транзакцию,
// когда другая ещё не закрыта.
var (
	ErrTransactionInProgress = errors.New("another transaction is already in progress")
	// ErrNoTransaction возвращается, когда операция требует открытой транзакции, а её нет.
	ErrNoTransaction = errors.New("no transaction in progress")
)

// Manager следит за тем, чтобы в каждый момент времени шла не более чем
// одна транзакция, и проводит все изменения корзины через неё.
type Manager struct {
	ongoing *Transaction
}

// NewManager создаёт менеджер без открытой транзакции.
func NewManager() *Manager {
	return &Manager{}
}

// HasOngoing сообщает, открыта ли сейчас транзакция.
func (m *Manager) HasOngoing() bool {
	return m.ongoing != nil
}

// Begin начинает вести переданную транзакцию.
// Возвращает ErrTransactionInProgress, если другая транзакция ещё открыта.
func (m *Manager) Begin(t *Transaction) error {
	if m.HasOngoing() {
		return ErrTransactionInProgress
	}
	m.ongoing = t
	return nil
}

// RegisterPendingPurchase кладёт товар в корзину покупателя открытой
// транзакции. Товар должен быть заранее получен со склада; менеджер этого
// не проверяет. Возвращает ErrNoTransaction, если транзакция не открыта.
func (m *Manager) RegisterPendingPurchase(p catalog.Product) error {
	if !m.HasOngoing() {
		return ErrNoTransaction
	}
	m.ongoing.Customer().Cart().Add(p)
	return nil
}

// Close завершает открытую транзакцию, возвращает её и освобождает слот
// менеджера для следующей. Возвращает ErrNoTransaction, если транзакции нет.
func (m *Manager) Close() (*Transaction, error) {
	if !m.HasOngoing() {
		return nil, ErrNoTransaction
	}

	closed := m.ongoing
	if err := closed.Finalise(); err != nil {
		return nil, err
	}
	m.ongoing = nil
	return closed, nil
}
