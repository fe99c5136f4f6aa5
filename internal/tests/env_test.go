package tests

import (
	"testing"

	"warung-pos/internal/domain"
	"warung-pos/internal/service"
	"warung-pos/internal/storage"

	"github.com/stretchr/testify/require"
)

// env wires the services against a seeded in-memory store, the same way the
// server does at boot.
type env struct {
	store    *storage.MemoryStore
	catalog  *service.CatalogService
	orders   *service.OrderService
	payments *service.PaymentService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, storage.SeedDemoData(store))

	payments := service.NewPaymentService(store, store)
	return &env{
		store:    store,
		catalog:  service.NewCatalogService(store),
		orders:   service.NewOrderService(store, store, payments),
		payments: payments,
	}
}

// newEmptyCatalog returns a catalog service over a store with no seed data.
func newEmptyCatalog(t *testing.T) *service.CatalogService {
	t.Helper()
	return service.NewCatalogService(storage.NewMemoryStore())
}

func nasiGoreng(quantity int) domain.OrderItem {
	return domain.OrderItem{MenuItemID: "m1", Name: "Nasi Goreng Special", Price: 45000, Quantity: quantity}
}

func esTeh(quantity int) domain.OrderItem {
	return domain.OrderItem{MenuItemID: "m4", Name: "Es Teh Manis", Price: 10000, Quantity: quantity}
}
