package tests

import (
	"testing"

	"warung-pos/internal/domain"
	"warung-pos/internal/service"
	"warung-pos/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Create(t *testing.T) {
	e := newEnv(t)

	order, err := e.orders.Create(1, []domain.OrderItem{nasiGoreng(2)}, "")

	require.NoError(t, err)
	assert.Equal(t, 90000, order.TotalAmount)
	assert.Equal(t, domain.OrderNew, order.Status)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
	assert.Nil(t, order.CompletionTime)

	table, err := e.catalog.GetTableByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, domain.TableOccupied, table.Status)
	assert.Equal(t, order.ID, table.CurrentOrderID)
}

func TestOrderService_CreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		tableNumber int
		items       []domain.OrderItem
		wantErr     func(error) bool
	}{
		{
			name:        "empty cart",
			tableNumber: 1,
			items:       []domain.OrderItem{},
			wantErr:     domain.IsValidation,
		},
		{
			name:        "non-positive quantity",
			tableNumber: 1,
			items:       []domain.OrderItem{nasiGoreng(0)},
			wantErr:     domain.IsValidation,
		},
		{
			name:        "unknown table",
			tableNumber: 99,
			items:       []domain.OrderItem{nasiGoreng(1)},
			wantErr:     domain.IsNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			e := newEnv(t)

			_, err := e.orders.Create(testCase.tableNumber, testCase.items, "")

			assert.Error(t, err)
			assert.True(t, testCase.wantErr(err))

			orders, listErr := e.orders.List()
			require.NoError(t, listErr)
			assert.Empty(t, orders, "failed create must leave no order behind")
		})
	}
}

func TestOrderService_CreateRejectsOccupiedTable(t *testing.T) {
	e := newEnv(t)

	_, err := e.orders.Create(2, []domain.OrderItem{esTeh(1)}, "")
	require.NoError(t, err)

	_, err = e.orders.Create(2, []domain.OrderItem{esTeh(3)}, "")
	assert.True(t, domain.IsValidation(err))
}

func TestOrderService_SnapshotPricing(t *testing.T) {
	e := newEnv(t)

	order, err := e.orders.Create(1, []domain.OrderItem{nasiGoreng(2)}, "")
	require.NoError(t, err)

	// Menu edits after the fact must not reach historical orders.
	item, err := e.store.GetMenuItem("m1")
	require.NoError(t, err)
	item.Price = 99999
	require.NoError(t, e.store.UpdateMenuItem(item))

	stored, err := e.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 45000, stored.Items[0].Price)
	assert.Equal(t, 90000, stored.TotalAmount)
}

func TestOrderService_UpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []domain.OrderStatus
		next    domain.OrderStatus
		allowed bool
	}{
		{name: "new to preparing", path: nil, next: domain.OrderPreparing, allowed: true},
		{name: "new to cancelled", path: nil, next: domain.OrderCancelled, allowed: true},
		{name: "new to ready skips preparing", path: nil, next: domain.OrderReady, allowed: false},
		{name: "new to completed skips everything", path: nil, next: domain.OrderCompleted, allowed: false},
		{name: "preparing to ready", path: []domain.OrderStatus{domain.OrderPreparing}, next: domain.OrderReady, allowed: true},
		{name: "preparing back to new", path: []domain.OrderStatus{domain.OrderPreparing}, next: domain.OrderNew, allowed: false},
		{name: "ready to delivered", path: []domain.OrderStatus{domain.OrderPreparing, domain.OrderReady}, next: domain.OrderDelivered, allowed: true},
		{name: "delivered to completed", path: []domain.OrderStatus{domain.OrderPreparing, domain.OrderReady, domain.OrderDelivered}, next: domain.OrderCompleted, allowed: true},
		{name: "delivered to cancelled", path: []domain.OrderStatus{domain.OrderPreparing, domain.OrderReady, domain.OrderDelivered}, next: domain.OrderCancelled, allowed: true},
		{name: "completed is terminal", path: []domain.OrderStatus{domain.OrderPreparing, domain.OrderReady, domain.OrderDelivered, domain.OrderCompleted}, next: domain.OrderCancelled, allowed: false},
		{name: "cancelled is terminal", path: []domain.OrderStatus{domain.OrderCancelled}, next: domain.OrderPreparing, allowed: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			e := newEnv(t)
			order, err := e.orders.Create(1, []domain.OrderItem{nasiGoreng(1)}, "")
			require.NoError(t, err)
			for _, step := range testCase.path {
				_, err := e.orders.UpdateStatus(order.ID, step)
				require.NoError(t, err)
			}
			before, err := e.orders.Get(order.ID)
			require.NoError(t, err)

			updated, err := e.orders.UpdateStatus(order.ID, testCase.next)

			if !testCase.allowed {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				unchanged, getErr := e.orders.Get(order.ID)
				require.NoError(t, getErr)
				assert.Equal(t, before.Status, unchanged.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.next, updated.Status)
		})
	}
}

func TestOrderService_CancelReleasesTable(t *testing.T) {
	e := newEnv(t)
	order, err := e.orders.Create(1, []domain.OrderItem{nasiGoreng(2)}, "")
	require.NoError(t, err)

	cancelled, err := e.orders.UpdateStatus(order.ID, domain.OrderCancelled)

	require.NoError(t, err)
	require.NotNil(t, cancelled.CompletionTime)

	table, err := e.catalog.GetTableByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, table.Status)
	assert.Zero(t, table.CurrentOrderID)
}

func TestOrderService_StaleCompletionKeepsNewerOrderSeated(t *testing.T) {
	e := newEnv(t)
	order, err := e.orders.Create(4, []domain.OrderItem{esTeh(1)}, "")
	require.NoError(t, err)

	// Simulate the table having been handed to a newer order through the raw
	// status write the floor staff use.
	table, err := e.catalog.GetTableByNumber(4)
	require.NoError(t, err)
	_, err = e.catalog.SetTableStatus(table.ID, domain.TableOccupied, order.ID+100)
	require.NoError(t, err)

	cancelled, err := e.orders.UpdateStatus(order.ID, domain.OrderCancelled)
	require.NoError(t, err)
	require.NotNil(t, cancelled.CompletionTime)

	// The stale cancellation must not free a table it no longer owns.
	table, err = e.catalog.GetTableByNumber(4)
	require.NoError(t, err)
	assert.Equal(t, domain.TableOccupied, table.Status)
	assert.Equal(t, order.ID+100, table.CurrentOrderID)
}

func TestOrderService_CompletionRecordsPayment(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, storage.SeedDemoData(store))
	recorder := new(mockPaymentRecorder)
	orders := service.NewOrderService(store, store, recorder)

	order, err := orders.Create(1, []domain.OrderItem{nasiGoreng(2)}, "")
	require.NoError(t, err)

	recorder.On("RecordForOrder", order.ID, 90000).Return(nil).Once()

	for _, step := range []domain.OrderStatus{domain.OrderPreparing, domain.OrderReady, domain.OrderDelivered, domain.OrderCompleted} {
		_, err := orders.UpdateStatus(order.ID, step)
		require.NoError(t, err)
	}

	recorder.AssertExpectations(t)
}

func TestOrderService_NilRecorderTolerated(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, storage.SeedDemoData(store))
	orders := service.NewOrderService(store, store, nil)

	order, err := orders.Create(1, []domain.OrderItem{esTeh(1)}, "")
	require.NoError(t, err)
	_, err = orders.UpdateStatus(order.ID, domain.OrderCancelled)
	assert.NoError(t, err)
}

func TestOrderService_UpdateKitchenDetails(t *testing.T) {
	e := newEnv(t)
	order, err := e.orders.Create(1, []domain.OrderItem{nasiGoreng(1)}, "no peanuts")
	require.NoError(t, err)

	updated, err := e.orders.UpdateKitchenDetails(order.ID, "Budi", "extra sambal on the side")
	require.NoError(t, err)
	assert.Equal(t, "Budi", updated.AssignedChef)
	assert.Equal(t, "extra sambal on the side", updated.PreparationNotes)
	assert.Equal(t, "no peanuts", updated.SpecialRequests)

	_, err = e.orders.UpdateStatus(order.ID, domain.OrderCancelled)
	require.NoError(t, err)
	_, err = e.orders.UpdateKitchenDetails(order.ID, "Siti", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderService_ListOrderingAndFilters(t *testing.T) {
	e := newEnv(t)
	first, err := e.orders.Create(1, []domain.OrderItem{nasiGoreng(1)}, "")
	require.NoError(t, err)
	second, err := e.orders.Create(2, []domain.OrderItem{esTeh(2)}, "")
	require.NoError(t, err)
	third, err := e.orders.Create(3, []domain.OrderItem{esTeh(1)}, "")
	require.NoError(t, err)

	_, err = e.orders.UpdateStatus(second.ID, domain.OrderCancelled)
	require.NoError(t, err)

	all, err := e.orders.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first; ids are creation-ordered and break timestamp ties.
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	fresh, err := e.orders.ListByStatus(domain.OrderNew)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)

	history, err := e.orders.History()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, second.ID, history[0].ID)

	_, err = e.orders.ListByStatus("burnt")
	assert.True(t, domain.IsValidation(err))
}

func TestOrderService_GetUnknown(t *testing.T) {
	e := newEnv(t)
	_, err := e.orders.Get(404)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = e.orders.UpdateStatus(404, domain.OrderPreparing)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

type mockPaymentRecorder struct {
	mock.Mock
}

func (m *mockPaymentRecorder) RecordForOrder(orderID, amount int) error {
	args := m.Called(orderID, amount)
	return args.Error(0)
}

var _ service.PaymentRecorder = (*mockPaymentRecorder)(nil)
