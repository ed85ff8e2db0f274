package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	inventory "github.com/wyfcoding/groceryplatform/internal/inventory/domain"
	"github.com/wyfcoding/groceryplatform/internal/order/domain"
	"github.com/wyfcoding/pkg/logging"
)

// OrderApplicationService drives the cart/stock/order flow: every quantity
// change goes through the stock manager before it becomes visible in the
// ledger, so a failing operation leaves both stock and totals untouched.
type OrderApplicationService struct {
	stock     *inventory.StockManager
	ledger    domain.OrderLedger
	publisher domain.EventPublisher
}

func NewOrderApplicationService(stock *inventory.StockManager, ledger domain.OrderLedger, publisher domain.EventPublisher) *OrderApplicationService {
	return &OrderApplicationService{stock: stock, ledger: ledger, publisher: publisher}
}

// AddItem reserves stock for the named product and materializes the addition
// as a new Pending order in the customer's ledger. On ErrInsufficientStock
// (or an unknown product) the ledger is left unchanged and no stock moves.
func (s *OrderApplicationService) AddItem(ctx context.Context, customerID, productName string, quantity int) (*domain.Order, error) {
	product, err := s.stock.Reserve(ctx, productName, quantity)
	if err != nil {
		return nil, err
	}

	order := domain.NewOrder(customerID)
	item := order.AddItem(product, quantity)
	if err := s.ledger.Append(ctx, order); err != nil {
		// Return the units so the failed add is a no-op for stock too.
		if relErr := s.stock.Release(ctx, productName, quantity); relErr != nil {
			logging.Error(ctx, "failed to release stock after append failure", "product", productName, "error", relErr)
		}
		return nil, err
	}

	if s.publisher != nil {
		event := domain.ItemAddedEvent{
			CustomerID: customerID,
			Product:    productName,
			Quantity:   quantity,
			LineTotal:  item.LineTotal().String(),
			Timestamp:  time.Now(),
		}
		if err := s.publisher.PublishItemAdded(ctx, event); err != nil {
			logging.Warn(ctx, "failed to publish item added event", "error", err)
		}
	}
	return order, nil
}

// RemoveItem releases quantity units of the named product back to stock and
// shrinks the matching line item. An item reduced to zero is pruned; an order
// left without items is dropped from the active view.
func (s *OrderApplicationService) RemoveItem(ctx context.Context, customerID, productName string, quantity int) error {
	orders, err := s.ledger.Pending(ctx, customerID)
	if err != nil {
		return err
	}

	var target *domain.Order
	var item *domain.OrderItem
	for _, o := range orders {
		if it := o.FindItem(productName); it != nil {
			target, item = o, it
			break
		}
	}
	if target == nil {
		return domain.ErrItemNotFound
	}
	if quantity <= 0 || quantity > item.Quantity {
		return inventory.ErrInvalidQuantity
	}

	if err := s.stock.Release(ctx, productName, quantity); err != nil {
		return err
	}
	if err := target.ReduceItem(productName, quantity); err != nil {
		return err
	}
	if target.IsEmpty() {
		if err := s.ledger.Remove(ctx, customerID, target); err != nil {
			return err
		}
	}

	if s.publisher != nil {
		event := domain.ItemRemovedEvent{
			CustomerID: customerID,
			Product:    productName,
			Quantity:   quantity,
			Timestamp:  time.Now(),
		}
		if err := s.publisher.PublishItemRemoved(ctx, event); err != nil {
			logging.Warn(ctx, "failed to publish item removed event", "error", err)
		}
	}
	return nil
}

// ListOrders returns the customer's Pending orders, the active cart view.
func (s *OrderApplicationService) ListOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.ledger.Pending(ctx, customerID)
}

// PlaceOrder registers an already-built order in the ledger.
func (s *OrderApplicationService) PlaceOrder(ctx context.Context, order *domain.Order) error {
	return s.ledger.Append(ctx, order)
}

// Checkout settles the customer's Pending orders: sums their totals, marks
// each CheckedOut and clears them from the active view. Stock is untouched
// because every unit was already reserved at add time. With nothing pending
// it fails with ErrEmptyCart, which also makes an immediate second checkout
// fail the same way instead of double-charging.
func (s *OrderApplicationService) Checkout(ctx context.Context, customerID string) (decimal.Decimal, error) {
	orders, err := s.ledger.Pending(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(orders) == 0 {
		return decimal.Zero, domain.ErrEmptyCart
	}

	amount := decimal.Zero
	for _, o := range orders {
		amount = amount.Add(o.Total())
		o.MarkCheckedOut()
	}
	if err := s.ledger.ClearPending(ctx, customerID); err != nil {
		return decimal.Zero, err
	}

	if s.publisher != nil {
		event := domain.OrderCheckedOutEvent{
			CustomerID: customerID,
			Amount:     amount.String(),
			Orders:     len(orders),
			Timestamp:  time.Now(),
		}
		if err := s.publisher.PublishOrderCheckedOut(ctx, event); err != nil {
			logging.Warn(ctx, "failed to publish checkout event", "error", err)
		}
	}
	return amount, nil
}
