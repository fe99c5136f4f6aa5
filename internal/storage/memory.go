package storage

import (
	"sync"

	"warung-pos/internal/domain"
)

// MemoryStore keeps every collection in process memory. A single mutex covers
// all of it so compound commits (order plus table) apply as one step.
type MemoryStore struct {
	mu             sync.Mutex
	menuItems      []domain.MenuItem
	tables         []domain.Table
	orders         []domain.Order
	payments       []domain.Payment
	orderCounter   int
	paymentCounter int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateMenuItem(item *domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuItems = append(s.menuItems, *item)
	return nil
}

func (s *MemoryStore) ListMenuItems() ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MenuItem, len(s.menuItems))
	copy(out, s.menuItems)
	return out, nil
}

func (s *MemoryStore) GetMenuItem(id string) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.menuItems {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrMenuItemNotFound
}

func (s *MemoryStore) UpdateMenuItem(item *domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menuItems {
		if s.menuItems[i].ID == item.ID {
			s.menuItems[i] = *item
			return nil
		}
	}
	return domain.ErrMenuItemNotFound
}

func (s *MemoryStore) ListTables() ([]domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Table, len(s.tables))
	copy(out, s.tables)
	return out, nil
}

func (s *MemoryStore) GetTable(id int) (*domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findTableLocked(id)
}

func (s *MemoryStore) GetTableByNumber(number int) (*domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, table := range s.tables {
		if table.Number == number {
			found := table
			return &found, nil
		}
	}
	return nil, domain.ErrTableNotFound
}

// AddTable assigns the next free id (max existing + 1) and rejects duplicate
// user-facing numbers.
func (s *MemoryStore) AddTable(table *domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, existing := range s.tables {
		if existing.Number == table.Number {
			return domain.ErrDuplicateTableNumber
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	table.ID = maxID + 1
	s.tables = append(s.tables, *table)
	return nil
}

func (s *MemoryStore) UpdateTable(table *domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTableLocked(table)
}

func (s *MemoryStore) CreateOrder(order *domain.Order, table *domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderCounter++
	order.ID = s.orderCounter
	if table != nil {
		table.CurrentOrderID = order.ID
		if err := s.updateTableLocked(table); err != nil {
			s.orderCounter--
			return err
		}
	}

	stored := *order
	stored.Items = cloneItems(order.Items)
	s.orders = append(s.orders, stored)
	return nil
}

func (s *MemoryStore) GetOrder(id int) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == id {
			found := order
			found.Items = cloneItems(order.Items)
			return &found, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (s *MemoryStore) ListOrders() ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	for i, order := range s.orders {
		out[i] = order
		out[i].Items = cloneItems(order.Items)
	}
	return out, nil
}

func (s *MemoryStore) UpdateOrder(order *domain.Order, table *domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.ErrOrderNotFound
	}
	if table != nil {
		if err := s.updateTableLocked(table); err != nil {
			return err
		}
	}
	stored := *order
	stored.Items = cloneItems(order.Items)
	s.orders[index] = stored
	return nil
}

func (s *MemoryStore) CreatePayment(payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentCounter++
	payment.ID = s.paymentCounter
	s.payments = append(s.payments, *payment)
	return nil
}

func (s *MemoryStore) GetPayment(id int) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, payment := range s.payments {
		if payment.ID == id {
			found := payment
			return &found, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (s *MemoryStore) GetPaymentByOrder(orderID int) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Newest entry wins when an order somehow gathered more than one.
	for i := len(s.payments) - 1; i >= 0; i-- {
		if s.payments[i].OrderID == orderID {
			found := s.payments[i]
			return &found, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (s *MemoryStore) ListPayments() ([]domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Payment, len(s.payments))
	// Newest first, matching the order listing convention.
	for i, payment := range s.payments {
		out[len(s.payments)-1-i] = payment
	}
	return out, nil
}

func (s *MemoryStore) UpdatePayment(payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == payment.ID {
			s.payments[i] = *payment
			return nil
		}
	}
	return domain.ErrPaymentNotFound
}

func (s *MemoryStore) findTableLocked(id int) (*domain.Table, error) {
	for _, table := range s.tables {
		if table.ID == id {
			found := table
			return &found, nil
		}
	}
	return nil, domain.ErrTableNotFound
}

func (s *MemoryStore) updateTableLocked(table *domain.Table) error {
	for i := range s.tables {
		if s.tables[i].ID == table.ID {
			s.tables[i] = *table
			return nil
		}
	}
	return domain.ErrTableNotFound
}

// cloneItems duplicates an item slice so callers cannot mutate stored orders.
func cloneItems(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	copy(out, items)
	return out
}
