package domain

import "errors"

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrItemNotFound = errors.New("item not in cart")
)
