// Package domain contains the product catalog domain model.
package domain

import (
	"context"
	"iter"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a sellable catalog entry. Name is the unique key within the
// catalog. Stock is mutated only through the inventory module.
type Product struct {
	gorm.Model
	Name     string          `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name"`
	Category string          `gorm:"column:category;type:varchar(100);index" json:"category"`
	Price    decimal.Decimal `gorm:"column:price;type:decimal(20,8);not null" json:"price"`
	Stock    int             `gorm:"column:stock;not null;default:0" json:"stock"`
}

func (Product) TableName() string { return "products" }

// ProductRepository is the catalog storage port.
type ProductRepository interface {
	// Save registers or updates a product.
	Save(ctx context.Context, product *Product) error
	// GetByName returns the product or ErrProductNotFound.
	GetByName(ctx context.Context, name string) (*Product, error)
	// UpdateStock persists a new stock count for the named product.
	UpdateStock(ctx context.Context, name string, stock int) error
	// All yields every product in insertion order. The sequence is
	// restartable: ranging over it a second time starts from the beginning.
	All(ctx context.Context) iter.Seq[*Product]
}
