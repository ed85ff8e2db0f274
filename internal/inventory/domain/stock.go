// Package domain implements stock reservation and release for catalog
// products. The StockManager is the only code allowed to change a product's
// stock count; routing every cart mutation through it is what rules out both
// overselling and stock that leaks when items leave a cart.
package domain

import (
	"context"
	"sync"

	catalog "github.com/wyfcoding/groceryplatform/internal/catalog/domain"
)

// StockManager guards the check-then-decrement of a reservation so that two
// reservations can never both succeed against the same unit of stock.
type StockManager struct {
	mu      sync.Mutex
	catalog catalog.ProductRepository
}

func NewStockManager(repo catalog.ProductRepository) *StockManager {
	return &StockManager{catalog: repo}
}

// Reserve decrements available stock by quantity, all-or-nothing. A failed
// reservation leaves the product untouched.
func (m *StockManager) Reserve(ctx context.Context, productName string, quantity int) (*catalog.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.catalog.GetByName(ctx, productName)
	if err != nil {
		return nil, err
	}
	if p.Stock < quantity {
		return nil, ErrInsufficientStock
	}
	remaining := p.Stock - quantity
	if err := m.catalog.UpdateStock(ctx, p.Name, remaining); err != nil {
		return nil, err
	}
	p.Stock = remaining
	return p, nil
}

// Release returns quantity to available stock. It is the inverse of Reserve
// and never fails for a valid quantity on a known product.
func (m *StockManager) Release(ctx context.Context, productName string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.catalog.GetByName(ctx, productName)
	if err != nil {
		return err
	}
	restored := p.Stock + quantity
	if err := m.catalog.UpdateStock(ctx, p.Name, restored); err != nil {
		return err
	}
	p.Stock = restored
	return nil
}
