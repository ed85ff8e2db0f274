package domain

import "time"

// ItemAddedEvent is emitted after stock is reserved and the line item lands
// in the cart.
type ItemAddedEvent struct {
	CustomerID string    `json:"customer_id"`
	Product    string    `json:"product"`
	Quantity   int       `json:"quantity"`
	LineTotal  string    `json:"line_total"`
	Timestamp  time.Time `json:"timestamp"`
}

// ItemRemovedEvent is emitted after stock is released back.
type ItemRemovedEvent struct {
	CustomerID string    `json:"customer_id"`
	Product    string    `json:"product"`
	Quantity   int       `json:"quantity"`
	Timestamp  time.Time `json:"timestamp"`
}

// OrderCheckedOutEvent is emitted once per checkout with the settled amount.
type OrderCheckedOutEvent struct {
	CustomerID string    `json:"customer_id"`
	Amount     string    `json:"amount"`
	Orders     int       `json:"orders"`
	Timestamp  time.Time `json:"timestamp"`
}
