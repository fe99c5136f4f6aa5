package service

import (
	"time"

	"warung-pos/internal/domain"
)

type CatalogRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id string) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	ListTables() ([]domain.Table, error)
	GetTable(id int) (*domain.Table, error)
	GetTableByNumber(number int) (*domain.Table, error)
	AddTable(table *domain.Table) error
	UpdateTable(table *domain.Table) error
}

// OrderRepository commits an order together with its table so the occupancy
// invariant never observes a half-applied pair. A nil table means the order
// mutation stands alone. CreateOrder assigns the order id and points the
// table's CurrentOrderID at it before committing.
type OrderRepository interface {
	CreateOrder(order *domain.Order, table *domain.Table) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrder(order *domain.Order, table *domain.Table) error
}

type PaymentRepository interface {
	CreatePayment(payment *domain.Payment) error
	GetPayment(id int) (*domain.Payment, error)
	GetPaymentByOrder(orderID int) (*domain.Payment, error)
	ListPayments() ([]domain.Payment, error)
	UpdatePayment(payment *domain.Payment) error
}

type CatalogServiceInterface interface {
	ListMenuItems() ([]domain.MenuItem, error)
	ListCategories() ([]string, error)
	SetMenuItemAvailability(id string, available, outOfStock bool) (*domain.MenuItem, error)
	ListTables() ([]domain.Table, error)
	GetTable(id int) (*domain.Table, error)
	GetTableByNumber(number int) (*domain.Table, error)
	SetTableStatus(id int, status domain.TableStatus, orderID int) (*domain.Table, error)
	AddTable(number, seats int) (*domain.Table, error)
}

type OrderServiceInterface interface {
	Create(tableNumber int, items []domain.OrderItem, specialRequests string) (*domain.Order, error)
	UpdateStatus(orderID int, status domain.OrderStatus) (*domain.Order, error)
	UpdateKitchenDetails(orderID int, assignedChef, preparationNotes string) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	List() ([]domain.Order, error)
	ListByStatus(status domain.OrderStatus) ([]domain.Order, error)
	History() ([]domain.Order, error)
}

type PaymentServiceInterface interface {
	Record(orderID, amount int, method domain.PaymentMethod, customerName string) (*domain.Payment, error)
	UpdateStatus(id int, status domain.PaymentStatus, notes string) (*domain.Payment, error)
	Get(id int) (*domain.Payment, error)
	List() ([]domain.Payment, error)
	SalesReport(start, end time.Time) (*domain.SalesReport, error)
}

// PaymentRecorder lets the order engine open a ledger entry when an order
// completes without one. Optional collaborator; callers tolerate nil.
type PaymentRecorder interface {
	RecordForOrder(orderID, amount int) error
}
