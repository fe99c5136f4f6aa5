package tests

import (
	"testing"
	"time"

	"warung-pos/internal/domain"
	"warung-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKitchenBoard_Refresh(t *testing.T) {
	e := newEnv(t)
	board := service.NewKitchenBoard(e.orders, time.Minute)

	first, err := e.orders.Create(1, []domain.OrderItem{nasiGoreng(1)}, "")
	require.NoError(t, err)
	second, err := e.orders.Create(2, []domain.OrderItem{esTeh(2)}, "")
	require.NoError(t, err)
	_, err = e.orders.UpdateStatus(second.ID, domain.OrderPreparing)
	require.NoError(t, err)

	done, err := e.orders.Create(3, []domain.OrderItem{esTeh(1)}, "")
	require.NoError(t, err)
	_, err = e.orders.UpdateStatus(done.ID, domain.OrderCancelled)
	require.NoError(t, err)

	board.Refresh()
	snapshot := board.Snapshot()

	require.Len(t, snapshot.Orders, 2)
	assert.Equal(t, 1, snapshot.StatusCounts[domain.OrderNew])
	assert.Equal(t, 1, snapshot.StatusCounts[domain.OrderPreparing])
	assert.Equal(t, 0, snapshot.StatusCounts[domain.OrderReady])
	assert.False(t, snapshot.RefreshedAt.IsZero())

	ids := []int{snapshot.Orders[0].ID, snapshot.Orders[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestKitchenBoard_SnapshotIsStaleBetweenPolls(t *testing.T) {
	e := newEnv(t)
	board := service.NewKitchenBoard(e.orders, time.Minute)
	board.Refresh()

	_, err := e.orders.Create(1, []domain.OrderItem{nasiGoreng(1)}, "")
	require.NoError(t, err)

	// Nothing shows up until the next poll.
	assert.Empty(t, board.Snapshot().Orders)
	board.Refresh()
	assert.Len(t, board.Snapshot().Orders, 1)
}

func TestKitchenBoard_StartAndStop(t *testing.T) {
	e := newEnv(t)
	board := service.NewKitchenBoard(e.orders, 10*time.Millisecond)

	_, err := e.orders.Create(1, []domain.OrderItem{esTeh(1)}, "")
	require.NoError(t, err)

	board.Start()
	defer board.Stop()

	assert.Len(t, board.Snapshot().Orders, 1, "Start must refresh before returning")
	board.Stop()
	// Second Stop must not panic.
	board.Stop()
}
