package cache

import (
	"context"
	"errors"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
)

type CartCache interface {
	Get(ctx context.Context, id domain.CartID) (*domain.Cart, error)
	Set(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, id domain.CartID) error
}

var ErrCacheMiss = errors.New("cache miss")

// Noop is used when no Redis address is configured; every Get misses.
type Noop struct{}

func (Noop) Get(context.Context, domain.CartID) (*domain.Cart, error) { return nil, ErrCacheMiss }
func (Noop) Set(context.Context, *domain.Cart) error                 { return nil }
func (Noop) Delete(context.Context, domain.CartID) error             { return nil }
