package domain

import "time"

// ProductAddedEvent is emitted when a new product is registered.
type ProductAddedEvent struct {
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	Stock     int       `json:"stock"`
	Timestamp time.Time `json:"timestamp"`
}
