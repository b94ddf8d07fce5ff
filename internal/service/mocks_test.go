package service

import (
	"context"
	"sync"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/cache"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/repository"
)

// mockCartRepository keeps carts in memory and hands out copies, like a real
// store would.
type mockCartRepository struct {
	m      sync.Mutex
	carts  map[domain.CartID]*domain.Cart
	err    error
	ensure int
	saves  int
	clears int
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{carts: map[domain.CartID]*domain.Cart{}}
}

func (r *mockCartRepository) EnsureCart(_ context.Context, id domain.CartID) (*domain.Cart, error) {
	r.m.Lock()
	defer r.m.Unlock()
	r.ensure++
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.carts[id]
	if !ok {
		c = &domain.Cart{ID: id, Items: []domain.CartItem{}}
		r.carts[id] = c
	}
	return copyCart(c), nil
}

func (r *mockCartRepository) GetCart(_ context.Context, id domain.CartID) (*domain.Cart, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.carts[id]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	return copyCart(c), nil
}

func (r *mockCartRepository) SaveCart(_ context.Context, cart *domain.Cart) error {
	r.m.Lock()
	defer r.m.Unlock()
	r.saves++
	if r.err != nil {
		return r.err
	}
	r.carts[cart.ID] = copyCart(cart)
	return nil
}

func (r *mockCartRepository) ClearCart(_ context.Context, id domain.CartID) error {
	r.m.Lock()
	defer r.m.Unlock()
	r.clears++
	if r.err != nil {
		return r.err
	}
	c, ok := r.carts[id]
	if !ok {
		return repository.ErrCartNotFound
	}
	c.Items = []domain.CartItem{}
	return nil
}

func (r *mockCartRepository) stored(id domain.CartID) *domain.Cart {
	r.m.Lock()
	defer r.m.Unlock()
	if c, ok := r.carts[id]; ok {
		return copyCart(c)
	}
	return nil
}

func (r *mockCartRepository) calls() (ensure, saves, clears int) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.ensure, r.saves, r.clears
}

func copyCart(c *domain.Cart) *domain.Cart {
	cp := *c
	cp.Items = append([]domain.CartItem{}, c.Items...)
	return &cp
}

type mockProductRepository struct {
	m        sync.Mutex
	products []domain.Product
	err      error
	lookups  int
	inserted []domain.Product
}

func (r *mockProductRepository) GetAllProducts(context.Context) ([]domain.Product, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.products, nil
}

func (r *mockProductRepository) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	r.m.Lock()
	defer r.m.Unlock()
	r.lookups++
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *mockProductRepository) CountProducts(context.Context) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.products)), nil
}

func (r *mockProductRepository) InsertProducts(_ context.Context, products []domain.Product) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, products...)
	r.products = append(r.products, products...)
	return nil
}

type mockCache struct {
	m       sync.RWMutex
	cart    *domain.Cart
	err     error
	deletes int
}

func (c *mockCache) Get(context.Context, domain.CartID) (*domain.Cart, error) {
	c.m.RLock()
	defer c.m.RUnlock()
	if c.err != nil {
		return nil, c.err
	}
	if c.cart == nil {
		return nil, cache.ErrCacheMiss
	}
	return c.cart, nil
}

func (c *mockCache) Set(_ context.Context, cart *domain.Cart) error {
	c.m.Lock()
	defer c.m.Unlock()
	c.cart = cart
	return c.err
}

func (c *mockCache) Delete(context.Context, domain.CartID) error {
	c.m.Lock()
	defer c.m.Unlock()
	c.deletes++
	c.cart = nil
	return c.err
}

func (c *mockCache) getCart() *domain.Cart {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.cart
}

type mockPublisher struct {
	m      sync.Mutex
	events []domain.CheckoutEvent
	err    error
}

func (p *mockPublisher) PublishCheckout(_ context.Context, e domain.CheckoutEvent) error {
	p.m.Lock()
	defer p.m.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *mockPublisher) Close() error { return nil }
