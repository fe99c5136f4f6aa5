package domain

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions lists the allowed next state per lifecycle stage.
// Terminal states have no outgoing edges.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderNew:       {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderDelivered, OrderCancelled},
	OrderDelivered: {OrderCompleted, OrderCancelled},
	OrderCompleted: {},
	OrderCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodEWallet      PaymentMethod = "e_wallet"
)

// AllPaymentMethods returns every method in a fixed order, used to keep
// zero-valued keys present in report breakdowns.
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodCash, MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodEWallet}
}

func (m PaymentMethod) Valid() bool {
	for _, known := range AllPaymentMethods() {
		if m == known {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
	Available   bool   `json:"available"`
	OutOfStock  bool   `json:"out_of_stock"`
}

// Orderable is the single source of truth for whether an item can be put in
// a cart: out of stock always wins over the available flag.
func (m MenuItem) Orderable() bool {
	return m.Available && !m.OutOfStock
}

type Table struct {
	ID             int         `json:"id"`
	Number         int         `json:"number"`
	Seats          int         `json:"seats"`
	Status         TableStatus `json:"status"`
	CurrentOrderID int         `json:"current_order_id,omitempty"`
}

type OrderItem struct {
	ID         int    `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	// Name and Price are snapshots taken when the item entered the cart;
	// later menu edits must not change historical orders.
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type Order struct {
	ID               int         `json:"id"`
	TableNumber      int         `json:"table_number"`
	Items            []OrderItem `json:"items"`
	Status           OrderStatus `json:"status"`
	TotalAmount      int         `json:"total_amount"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	CompletionTime   *time.Time  `json:"completion_time,omitempty"`
	AssignedChef     string      `json:"assigned_chef,omitempty"`
	PreparationNotes string      `json:"preparation_notes,omitempty"`
	SpecialRequests  string      `json:"special_requests,omitempty"`
}

type Payment struct {
	ID            int           `json:"id"`
	OrderID       int           `json:"order_id"`
	Amount        int           `json:"amount"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CustomerName  string        `json:"customer_name,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// SalesReport is derived from paid payments and never persisted.
type SalesReport struct {
	TotalRevenue           int                   `json:"total_revenue"`
	TransactionCount       int                   `json:"transaction_count"`
	PaymentMethodBreakdown map[PaymentMethod]int `json:"payment_method_breakdown"`
	PeriodStart            time.Time             `json:"period_start"`
	PeriodEnd              time.Time             `json:"period_end"`
}

// KitchenSnapshot is the cached view the kitchen board serves between polls.
type KitchenSnapshot struct {
	Orders       []Order             `json:"orders"`
	StatusCounts map[OrderStatus]int `json:"status_counts"`
	RefreshedAt  time.Time           `json:"refreshed_at"`
}
