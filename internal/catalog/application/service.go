package application

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/logging"

	"github.com/wyfcoding/groceryplatform/internal/catalog/domain"
)

type CatalogApplicationService struct{ repo domain.ProductRepository }

func NewCatalogApplicationService(repo domain.ProductRepository) *CatalogApplicationService {
	return &CatalogApplicationService{repo: repo}
}

// AddProduct registers a new product. A negative price or stock fails with
// ErrInvalidProduct; registering a name that is already present fails with
// ErrDuplicateProduct.
func (s *CatalogApplicationService) AddProduct(ctx context.Context, name, category string, price decimal.Decimal, stock int) (*domain.Product, error) {
	if price.IsNegative() || stock < 0 {
		return nil, domain.ErrInvalidProduct
	}
	switch _, err := s.repo.GetByName(ctx, name); {
	case err == nil:
		return nil, domain.ErrDuplicateProduct
	case !errors.Is(err, domain.ErrProductNotFound):
		return nil, err
	}
	p := &domain.Product{Name: name, Category: category, Price: price, Stock: stock}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	event := domain.ProductAddedEvent{
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price.String(),
		Stock:     p.Stock,
		Timestamp: time.Now(),
	}
	logging.Info(ctx, "product added",
		"name", event.Name,
		"category", event.Category,
		"price", event.Price,
		"stock", event.Stock,
	)
	return p, nil
}

func (s *CatalogApplicationService) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	return s.repo.GetByName(ctx, name)
}

// ListAll yields every product in insertion order.
func (s *CatalogApplicationService) ListAll(ctx context.Context) iter.Seq[*domain.Product] {
	return s.repo.All(ctx)
}

// ListByCategory filters ListAll by exact category match. An unknown
// category yields an empty sequence, not an error.
func (s *CatalogApplicationService) ListByCategory(ctx context.Context, category string) iter.Seq[*domain.Product] {
	return func(yield func(*domain.Product) bool) {
		for p := range s.repo.All(ctx) {
			if p.Category != category {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
