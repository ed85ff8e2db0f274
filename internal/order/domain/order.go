// Package domain contains the order domain model: line items, the pending
// order (cart) and the per-customer ledger port.
package domain

import (
	"context"

	"github.com/shopspring/decimal"
	catalog "github.com/wyfcoding/groceryplatform/internal/catalog/domain"
	inventory "github.com/wyfcoding/groceryplatform/internal/inventory/domain"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusCheckedOut OrderStatus = "CHECKED_OUT"
)

// OrderItem is a single product+quantity entry within an order. The product
// reference is non-owning; quantity stays positive for as long as the item
// exists. The quantity never exceeds the stock reserved for it at add time.
type OrderItem struct {
	Product  *catalog.Product `json:"product"`
	Quantity int              `json:"quantity"`
}

// LineTotal is product price times quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a customer's cart while Pending and an immutable record once
// CheckedOut. The cached total is updated in the same step as every item
// mutation, so Total always equals the sum of line totals.
type Order struct {
	CustomerID string       `json:"customer_id"`
	Items      []*OrderItem `json:"items"`
	Status     OrderStatus  `json:"status"`
	total      decimal.Decimal
}

func NewOrder(customerID string) *Order {
	return &Order{CustomerID: customerID, Status: OrderStatusPending, total: decimal.Zero}
}

// AddItem appends a line item and grows the cached total. Stock for the
// quantity must already be reserved by the caller.
func (o *Order) AddItem(product *catalog.Product, quantity int) *OrderItem {
	item := &OrderItem{Product: product, Quantity: quantity}
	o.Items = append(o.Items, item)
	o.total = o.total.Add(item.LineTotal())
	return item
}

// FindItem returns the first item referencing the named product, or nil.
func (o *Order) FindItem(productName string) *OrderItem {
	for _, item := range o.Items {
		if item.Product.Name == productName {
			return item
		}
	}
	return nil
}

// ReduceItem lowers an item's quantity and the cached total together. A
// quantity outside (0, item.Quantity] fails with ErrInvalidQuantity and
// changes nothing. An item reduced to zero is removed from the order.
func (o *Order) ReduceItem(productName string, quantity int) error {
	item := o.FindItem(productName)
	if item == nil {
		return ErrItemNotFound
	}
	if quantity <= 0 || quantity > item.Quantity {
		return inventory.ErrInvalidQuantity
	}
	item.Quantity -= quantity
	o.total = o.total.Sub(item.Product.Price.Mul(decimal.NewFromInt(int64(quantity))))
	if item.Quantity == 0 {
		for i, it := range o.Items {
			if it == item {
				o.Items = append(o.Items[:i], o.Items[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Total returns the cached order total.
func (o *Order) Total() decimal.Decimal { return o.total }

func (o *Order) IsPending() bool { return o.Status == OrderStatusPending }

func (o *Order) IsEmpty() bool { return len(o.Items) == 0 }

// MarkCheckedOut transitions Pending -> CheckedOut. The transition is
// one-way; there is no path back to Pending.
func (o *Order) MarkCheckedOut() { o.Status = OrderStatusCheckedOut }

// OrderLedger is a customer's append-only collection of orders. Pending
// orders together form the active cart.
type OrderLedger interface {
	// Append registers an order for its customer.
	Append(ctx context.Context, order *Order) error
	// Pending returns the customer's Pending orders in insertion order.
	Pending(ctx context.Context, customerID string) ([]*Order, error)
	// Remove drops a single order from the customer's active view.
	Remove(ctx context.Context, customerID string, order *Order) error
	// ClearPending drops every Pending order from the active view.
	ClearPending(ctx context.Context, customerID string) error
}
