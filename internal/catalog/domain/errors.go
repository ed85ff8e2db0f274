package domain

import "errors"

var (
	// ErrDuplicateProduct is returned when registering a product name that
	// already exists in the catalog.
	ErrDuplicateProduct = errors.New("product already exists")
	// ErrProductNotFound is returned when no product has the given name.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct is returned when a registration carries a negative
	// price or stock.
	ErrInvalidProduct = errors.New("invalid product definition")
)
