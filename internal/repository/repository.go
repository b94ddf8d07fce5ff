package repository

import (
	"context"
	"errors"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository is the catalog store. It is read-only to the API apart
// from the one-time seed.
type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	InsertProducts(ctx context.Context, products []domain.Product) error
}

// CartRepository stores whole cart documents. SaveCart overwrites the item
// list without any version check, so concurrent writers race and the last
// write wins.
type CartRepository interface {
	EnsureCart(ctx context.Context, id domain.CartID) (*domain.Cart, error)
	GetCart(ctx context.Context, id domain.CartID) (*domain.Cart, error)
	SaveCart(ctx context.Context, cart *domain.Cart) error
	ClearCart(ctx context.Context, id domain.CartID) error
}
