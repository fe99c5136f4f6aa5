package service

import (
	"fmt"
	"log"
	"sort"
	"time"

	"warung-pos/internal/domain"
)

type OrderService struct {
	repo     OrderRepository
	catalog  CatalogRepository
	payments PaymentRecorder
}

func NewOrderService(repo OrderRepository, catalog CatalogRepository, payments PaymentRecorder) *OrderService {
	return &OrderService{repo: repo, catalog: catalog, payments: payments}
}

// Create places an order for the given table. The order and the table's
// occupancy are committed as one step.
func (s *OrderService) Create(tableNumber int, items []domain.OrderItem, specialRequests string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.NewValidationError("order must contain at least one item")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.NewValidationError(fmt.Sprintf("quantity for %q must be positive", item.Name))
		}
		if item.Price < 0 {
			return nil, domain.NewValidationError(fmt.Sprintf("price for %q must not be negative", item.Name))
		}
	}

	table, err := s.catalog.GetTableByNumber(tableNumber)
	if err != nil {
		return nil, err
	}
	if table.Status == domain.TableOccupied {
		return nil, domain.NewValidationError(fmt.Sprintf("table %d already has an open order", tableNumber))
	}

	// Item IDs are positional within the order; name and price stay as the
	// snapshots the cart captured.
	total := 0
	for i := range items {
		items[i].ID = i + 1
		total += items[i].Price * items[i].Quantity
	}

	now := time.Now()
	order := &domain.Order{
		TableNumber:     tableNumber,
		Items:           items,
		Status:          domain.OrderNew,
		TotalAmount:     total,
		CreatedAt:       now,
		UpdatedAt:       now,
		SpecialRequests: specialRequests,
	}

	occupied := *table
	occupied.Status = domain.TableOccupied
	if err := s.repo.CreateOrder(order, &occupied); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus advances the lifecycle. Illegal transitions are rejected and
// leave both the order and its table untouched.
func (s *OrderService) UpdateStatus(orderID int, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("unknown order status")
	}
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	var table *domain.Table
	if status.Terminal() {
		done := order.UpdatedAt
		order.CompletionTime = &done

		// Release the table, but only when it still points at this order;
		// a newer order on the same table must not lose its seat.
		if t, err := s.catalog.GetTableByNumber(order.TableNumber); err == nil && t.CurrentOrderID == order.ID {
			t.Status = domain.TableAvailable
			t.CurrentOrderID = 0
			table = t
		}
	}

	if err := s.repo.UpdateOrder(order, table); err != nil {
		return nil, err
	}

	if status == domain.OrderCompleted && s.payments != nil {
		if err := s.payments.RecordForOrder(order.ID, order.TotalAmount); err != nil {
			log.Printf("[pos] could not open ledger entry for order %d: %v", order.ID, err)
		}
	}
	return order, nil
}

// UpdateKitchenDetails sets the chef assignment and preparation notes while
// the order is still being worked.
func (s *OrderService) UpdateKitchenDetails(orderID int, assignedChef, preparationNotes string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, fmt.Errorf("%w: order %d is %s", domain.ErrInvalidTransition, orderID, order.Status)
	}
	order.AssignedChef = assignedChef
	order.PreparationNotes = preparationNotes
	order.UpdatedAt = time.Now()
	if err := s.repo.UpdateOrder(order, nil); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.repo.GetOrder(orderID)
}

// List returns all orders newest first. IDs are creation-ordered, so they
// break ties between equal timestamps.
func (s *OrderService) List() ([]domain.Order, error) {
	orders, err := s.repo.ListOrders()
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *OrderService) ListByStatus(status domain.OrderStatus) ([]domain.Order, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("unknown order status")
	}
	orders, err := s.List()
	if err != nil {
		return nil, err
	}
	filtered := []domain.Order{}
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// History returns finished orders, completed and cancelled alike.
func (s *OrderService) History() ([]domain.Order, error) {
	orders, err := s.List()
	if err != nil {
		return nil, err
	}
	finished := []domain.Order{}
	for _, order := range orders {
		if order.Status.Terminal() {
			finished = append(finished, order)
		}
	}
	return finished, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
