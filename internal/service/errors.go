package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrEmptyCart       = errors.New("cart is empty, nothing to checkout")
	ErrDataAccess      = errors.New("data access failure")
)

func dataAccess(err error) error {
	return fmt.Errorf("%w: %w", ErrDataAccess, err)
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
