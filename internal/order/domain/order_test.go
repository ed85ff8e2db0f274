package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/wyfcoding/groceryplatform/internal/catalog/domain"
	inventory "github.com/wyfcoding/groceryplatform/internal/inventory/domain"
)

func product(name string, price int64) *catalog.Product {
	return &catalog.Product{Name: name, Category: "Dairy", Price: decimal.NewFromInt(price), Stock: 100}
}

// recomputed walks the items and sums line totals from scratch, bypassing
// the cached total.
func recomputed(o *Order) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

func TestOrder_AddItemGrowsTotal(t *testing.T) {
	o := NewOrder("alice")
	o.AddItem(product("Milk", 35), 10)

	assert.True(t, o.Total().Equal(decimal.NewFromInt(350)), "total = %s", o.Total())
	assert.True(t, o.Total().Equal(recomputed(o)))
	assert.Len(t, o.Items, 1)
}

func TestOrder_TotalStaysConsistentAcrossMutations(t *testing.T) {
	o := NewOrder("alice")
	o.AddItem(product("Milk", 35), 10)
	o.AddItem(product("Bananas", 10), 3)

	require.NoError(t, o.ReduceItem("Milk", 4))
	assert.True(t, o.Total().Equal(recomputed(o)), "cached %s, recomputed %s", o.Total(), recomputed(o))

	require.NoError(t, o.ReduceItem("Bananas", 3))
	assert.True(t, o.Total().Equal(recomputed(o)))
	assert.True(t, o.Total().Equal(decimal.NewFromInt(210)))
}

func TestOrder_ReduceItemPrunesAtZero(t *testing.T) {
	o := NewOrder("alice")
	o.AddItem(product("Milk", 35), 6)

	require.NoError(t, o.ReduceItem("Milk", 6))
	assert.Nil(t, o.FindItem("Milk"))
	assert.True(t, o.IsEmpty())
	assert.True(t, o.Total().IsZero())
}

func TestOrder_ReduceItemRejectsBadQuantities(t *testing.T) {
	o := NewOrder("alice")
	o.AddItem(product("Milk", 35), 6)

	tests := []struct {
		name string
		qty  int
	}{
		{"zero", 0},
		{"negative", -1},
		{"more than held", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.ReduceItem("Milk", tt.qty)
			assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
			assert.Equal(t, 6, o.FindItem("Milk").Quantity)
			assert.True(t, o.Total().Equal(decimal.NewFromInt(210)))
		})
	}
}

func TestOrder_ReduceUnknownItem(t *testing.T) {
	o := NewOrder("alice")
	o.AddItem(product("Milk", 35), 6)

	assert.ErrorIs(t, o.ReduceItem("Cheese", 1), ErrItemNotFound)
}

func TestOrder_StatusTransition(t *testing.T) {
	o := NewOrder("alice")
	assert.True(t, o.IsPending())

	o.MarkCheckedOut()
	assert.False(t, o.IsPending())
	assert.Equal(t, OrderStatusCheckedOut, o.Status)
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := &OrderItem{Product: product("Cookies", 50), Quantity: 3}
	assert.True(t, item.LineTotal().Equal(decimal.NewFromInt(150)))
}
