package domain

import "context"

// EventPublisher pushes order lifecycle events to interested consumers.
type EventPublisher interface {
	PublishItemAdded(ctx context.Context, event ItemAddedEvent) error
	PublishItemRemoved(ctx context.Context, event ItemRemovedEvent) error
	PublishOrderCheckedOut(ctx context.Context, event OrderCheckedOutEvent) error
}
