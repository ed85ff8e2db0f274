// Package memory provides the in-process catalog repository used by the
// simulator. Products live for the process lifetime and are never deleted.
package memory

import (
	"context"
	"iter"
	"sync"

	"github.com/wyfcoding/groceryplatform/internal/catalog/domain"
)

type productRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
	byName   map[string]*domain.Product
	nextID   uint
}

func NewProductRepository() domain.ProductRepository {
	return &productRepository{byName: make(map[string]*domain.Product), nextID: 1}
}

func (r *productRepository) Save(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[product.Name]; ok {
		existing.Category = product.Category
		existing.Price = product.Price
		existing.Stock = product.Stock
		return nil
	}
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	r.byName[product.Name] = product
	return nil
}

func (r *productRepository) GetByName(_ context.Context, name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *productRepository) UpdateStock(_ context.Context, name string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byName[name]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = stock
	return nil
}

func (r *productRepository) All(_ context.Context) iter.Seq[*domain.Product] {
	return func(yield func(*domain.Product) bool) {
		r.mu.RLock()
		snapshot := make([]*domain.Product, len(r.products))
		copy(snapshot, r.products)
		r.mu.RUnlock()
		for _, p := range snapshot {
			if !yield(p) {
				return
			}
		}
	}
}
