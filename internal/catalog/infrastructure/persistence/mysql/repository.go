package mysql

import (
	"context"
	"errors"
	"iter"

	"github.com/wyfcoding/groceryplatform/internal/catalog/domain"
	"github.com/wyfcoding/pkg/logging"
	"gorm.io/gorm"
)

type productRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) UpdateStock(ctx context.Context, name string, stock int) error {
	res := r.db.WithContext(ctx).Model(&domain.Product{}).Where("name = ?", name).Update("stock", stock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) All(ctx context.Context) iter.Seq[*domain.Product] {
	return func(yield func(*domain.Product) bool) {
		var products []*domain.Product
		if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
			logging.Error(ctx, "failed to list products", "error", err)
			return
		}
		for _, p := range products {
			if !yield(p) {
				return
			}
		}
	}
}
