package service

import (
	"context"
	"errors"
	"time"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/cache"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheOpTimeout = time.Second

type ProductFinder interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// CartService mutates carts with plain read-modify-write cycles. There is
// no locking: two concurrent mutations of the same cart can lose an update.
type CartService struct {
	repo     repository.CartRepository
	products ProductFinder
	cache    cache.CartCache
	log      *zap.Logger
	sfg      singleflight.Group // collapses concurrent cache misses per cart
}

func NewCartService(repo repository.CartRepository, products ProductFinder, cache cache.CartCache, log *zap.Logger) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		cache:    cache,
		log:      log,
	}
}

// EnsureCart returns the cart with the given id, creating it empty first if
// it does not exist. Idempotent.
func (s *CartService) EnsureCart(ctx context.Context, id domain.CartID) (*domain.Cart, error) {
	cart, err := s.repo.EnsureCart(ctx, id)
	if err != nil {
		s.log.Error("repo ensure cart error", zap.String("cart_id", string(id)), zap.Error(err))
		return nil, dataAccess(err)
	}
	return cart, nil
}

// GetCart reads through the cache. The returned cart may be shared with
// concurrent callers and must not be modified.
func (s *CartService) GetCart(ctx context.Context, id domain.CartID) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(string(id), func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, id)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("cache get error", zap.String("cart_id", string(id)), zap.Error(err))
		}

		cart, err = s.EnsureCart(ctx, id)
		if err != nil {
			return nil, err
		}

		s.storeInCache(cart)
		return cart, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

func (s *CartService) AddItem(ctx context.Context, id domain.CartID, productID string, qty int) (*domain.Cart, error) {
	if productID == "" {
		return nil, invalidInput("productId is required")
	}
	if qty <= 0 {
		return nil, invalidInput("qty must be greater than 0")
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.EnsureCart(ctx, id)
	if err != nil {
		return nil, err
	}

	cart.AddItem(*product, qty)

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		s.log.Error("repo save cart error", zap.String("cart_id", string(id)), zap.Error(err))
		return nil, dataAccess(err)
	}
	s.invalidateCache(id)

	s.log.Info("item added to cart",
		zap.String("cart_id", string(id)),
		zap.String("product_id", productID),
		zap.Int("qty", qty))
	return cart, nil
}

// RemoveItem deletes the line for productID. ErrItemNotFound is returned,
// and nothing is written, when the cart has no such line.
func (s *CartService) RemoveItem(ctx context.Context, id domain.CartID, productID string) (*domain.Cart, error) {
	cart, err := s.EnsureCart(ctx, id)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(productID) {
		return nil, ErrItemNotFound
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		s.log.Error("repo save cart error", zap.String("cart_id", string(id)), zap.Error(err))
		return nil, dataAccess(err)
	}
	s.invalidateCache(id)

	s.log.Info("item removed from cart",
		zap.String("cart_id", string(id)),
		zap.String("product_id", productID))
	return cart, nil
}

// ClearCart empties the item list. The cart document itself is kept.
func (s *CartService) ClearCart(ctx context.Context, id domain.CartID) error {
	if _, err := s.EnsureCart(ctx, id); err != nil {
		return err
	}

	if err := s.repo.ClearCart(ctx, id); err != nil {
		s.log.Error("repo clear cart error", zap.String("cart_id", string(id)), zap.Error(err))
		return dataAccess(err)
	}
	s.invalidateCache(id)
	return nil
}

// ComputeTotal is recomputed on every read and never stored.
func (s *CartService) ComputeTotal(items []domain.CartItem) string {
	return domain.FormatTotal(items)
}

func (s *CartService) storeInCache(cart *domain.Cart) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := s.cache.Set(ctx, cart); err != nil {
		s.log.Warn("cache set error", zap.String("cart_id", string(cart.ID)), zap.Error(err))
	}
}

func (s *CartService) invalidateCache(id domain.CartID) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.Warn("cache invalidate error", zap.String("cart_id", string(id)), zap.Error(err))
	}
}
