// Package memory holds the in-process order ledger. Orders are not
// persisted across restarts; checked-out orders leave the active view and
// are not retained for history.
package memory

import (
	"context"
	"sync"

	"github.com/wyfcoding/groceryplatform/internal/order/domain"
)

type orderLedger struct {
	mu     sync.RWMutex
	orders map[string][]*domain.Order
}

func NewOrderLedger() domain.OrderLedger {
	return &orderLedger{orders: make(map[string][]*domain.Order)}
}

func (l *orderLedger) Append(_ context.Context, order *domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders[order.CustomerID] = append(l.orders[order.CustomerID], order)
	return nil
}

func (l *orderLedger) Pending(_ context.Context, customerID string) ([]*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var pending []*domain.Order
	for _, o := range l.orders[customerID] {
		if o.IsPending() {
			pending = append(pending, o)
		}
	}
	return pending, nil
}

func (l *orderLedger) Remove(_ context.Context, customerID string, order *domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	list := l.orders[customerID]
	for i, o := range list {
		if o == order {
			l.orders[customerID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (l *orderLedger) ClearPending(_ context.Context, customerID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	// Checked-out orders are not retained, so nothing of the customer's
	// entry survives a clear. Checkout marks orders before clearing;
	// keeping non-Pending ones here would leak one order per checkout.
	delete(l.orders, customerID)
	return nil
}
