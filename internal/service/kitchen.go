package service

import (
	"log"
	"sync"
	"time"

	"warung-pos/internal/domain"
)

// kitchenStatuses are the stages the board cares about; delivered and later
// stages leave the screen.
var kitchenStatuses = []domain.OrderStatus{domain.OrderNew, domain.OrderPreparing, domain.OrderReady}

// KitchenBoard re-reads active orders on a fixed interval and serves the last
// snapshot in between. Staleness of up to one interval is expected.
type KitchenBoard struct {
	orders   OrderServiceInterface
	interval time.Duration

	mu       sync.RWMutex
	snapshot domain.KitchenSnapshot

	stop chan struct{}
	once sync.Once
}

func NewKitchenBoard(orders OrderServiceInterface, interval time.Duration) *KitchenBoard {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &KitchenBoard{
		orders:   orders,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start refreshes once so the first read is never empty, then polls until
// Stop is called.
func (b *KitchenBoard) Start() {
	b.Refresh()
	go b.loop()
}

func (b *KitchenBoard) loop() {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			b.Refresh()
		case <-b.stop:
			return
		}
	}
}

func (b *KitchenBoard) Stop() {
	b.once.Do(func() { close(b.stop) })
}

// Refresh rebuilds the snapshot from the live store.
func (b *KitchenBoard) Refresh() {
	orders, err := b.orders.List()
	if err != nil {
		log.Printf("[pos] kitchen board refresh failed: %v", err)
		return
	}

	active := []domain.Order{}
	counts := make(map[domain.OrderStatus]int, len(kitchenStatuses))
	for _, status := range kitchenStatuses {
		counts[status] = 0
	}
	for _, order := range orders {
		if _, tracked := counts[order.Status]; !tracked {
			continue
		}
		active = append(active, order)
		counts[order.Status]++
	}

	b.mu.Lock()
	b.snapshot = domain.KitchenSnapshot{
		Orders:       active,
		StatusCounts: counts,
		RefreshedAt:  time.Now(),
	}
	b.mu.Unlock()
}

func (b *KitchenBoard) Snapshot() domain.KitchenSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot
}
