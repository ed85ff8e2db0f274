package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/wyfcoding/groceryplatform/internal/catalog/domain"
	"github.com/wyfcoding/groceryplatform/internal/order/domain"
)

func pendingOrder(customerID string) *domain.Order {
	o := domain.NewOrder(customerID)
	o.AddItem(&catalog.Product{Name: "Milk", Price: decimal.NewFromInt(35), Stock: 100}, 1)
	return o
}

func TestOrderLedger_AppendAndPending(t *testing.T) {
	ctx := context.Background()
	ledger := NewOrderLedger()

	first := pendingOrder("alice")
	second := pendingOrder("alice")
	require.NoError(t, ledger.Append(ctx, first))
	require.NoError(t, ledger.Append(ctx, second))
	require.NoError(t, ledger.Append(ctx, pendingOrder("bob")))

	orders, err := ledger.Pending(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []*domain.Order{first, second}, orders)
}

func TestOrderLedger_PendingExcludesCheckedOut(t *testing.T) {
	ctx := context.Background()
	ledger := NewOrderLedger()

	done := pendingOrder("alice")
	done.MarkCheckedOut()
	open := pendingOrder("alice")
	require.NoError(t, ledger.Append(ctx, done))
	require.NoError(t, ledger.Append(ctx, open))

	orders, err := ledger.Pending(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []*domain.Order{open}, orders)
}

func TestOrderLedger_Remove(t *testing.T) {
	ctx := context.Background()
	ledger := NewOrderLedger()

	order := pendingOrder("alice")
	require.NoError(t, ledger.Append(ctx, order))
	require.NoError(t, ledger.Remove(ctx, "alice", order))

	orders, err := ledger.Pending(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, orders)

	// Removing an order that is already gone is a no-op.
	require.NoError(t, ledger.Remove(ctx, "alice", order))
}

func TestOrderLedger_ClearPending(t *testing.T) {
	ctx := context.Background()
	ledger := NewOrderLedger()

	require.NoError(t, ledger.Append(ctx, pendingOrder("alice")))
	require.NoError(t, ledger.Append(ctx, pendingOrder("alice")))
	require.NoError(t, ledger.ClearPending(ctx, "alice"))

	orders, err := ledger.Pending(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderLedger_ClearPendingDropsCheckedOutOrders(t *testing.T) {
	ctx := context.Background()
	ledger := NewOrderLedger()

	// Checkout marks every order CheckedOut before clearing; none of
	// them may stay behind in the store.
	for range 3 {
		require.NoError(t, ledger.Append(ctx, pendingOrder("alice")))
	}
	orders, err := ledger.Pending(ctx, "alice")
	require.NoError(t, err)
	for _, o := range orders {
		o.MarkCheckedOut()
	}
	require.NoError(t, ledger.ClearPending(ctx, "alice"))

	assert.Empty(t, ledger.(*orderLedger).orders["alice"])
}

func TestOrderLedger_ClearPendingIsPerCustomer(t *testing.T) {
	ctx := context.Background()
	ledger := NewOrderLedger()

	require.NoError(t, ledger.Append(ctx, pendingOrder("alice")))
	require.NoError(t, ledger.Append(ctx, pendingOrder("bob")))
	require.NoError(t, ledger.ClearPending(ctx, "alice"))

	orders, err := ledger.Pending(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
