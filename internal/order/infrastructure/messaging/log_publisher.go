package messaging

import (
	"context"

	"github.com/wyfcoding/groceryplatform/internal/order/domain"
	"github.com/wyfcoding/pkg/logging"
)

// LogEventPublisher records order events on the structured log. The CLI
// simulator uses it in place of a broker.
type LogEventPublisher struct{}

func NewLogEventPublisher() *LogEventPublisher { return &LogEventPublisher{} }

func (LogEventPublisher) PublishItemAdded(ctx context.Context, event domain.ItemAddedEvent) error {
	logging.Info(ctx, "item added",
		"customer_id", event.CustomerID,
		"product", event.Product,
		"quantity", event.Quantity,
		"line_total", event.LineTotal,
	)
	return nil
}

func (LogEventPublisher) PublishItemRemoved(ctx context.Context, event domain.ItemRemovedEvent) error {
	logging.Info(ctx, "item removed",
		"customer_id", event.CustomerID,
		"product", event.Product,
		"quantity", event.Quantity,
	)
	return nil
}

func (LogEventPublisher) PublishOrderCheckedOut(ctx context.Context, event domain.OrderCheckedOutEvent) error {
	logging.Info(ctx, "order checked out",
		"customer_id", event.CustomerID,
		"amount", event.Amount,
		"orders", event.Orders,
	)
	return nil
}
