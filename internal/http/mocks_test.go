package http

import (
	"context"
	"sync"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/repository"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/service"
)

type ProductListerMock struct {
	products []domain.Product
	err      error
}

func (m ProductListerMock) ListProducts(context.Context) ([]domain.Product, error) {
	return m.products, m.err
}

type CartManagerMock struct {
	cart  *domain.Cart
	err   error
	calls int
}

func (m *CartManagerMock) GetCart(context.Context, domain.CartID) (*domain.Cart, error) {
	m.calls++
	return m.cart, m.err
}

func (m *CartManagerMock) AddItem(context.Context, domain.CartID, string, int) (*domain.Cart, error) {
	m.calls++
	return m.cart, m.err
}

func (m *CartManagerMock) RemoveItem(context.Context, domain.CartID, string) (*domain.Cart, error) {
	m.calls++
	return m.cart, m.err
}

func (m *CartManagerMock) ComputeTotal(items []domain.CartItem) string {
	return domain.FormatTotal(items)
}

type CheckoutProcessorMock struct {
	receipt *domain.Receipt
	err     error
	got     service.CheckoutRequest
}

func (m *CheckoutProcessorMock) Checkout(_ context.Context, req service.CheckoutRequest) (*domain.Receipt, error) {
	m.got = req
	return m.receipt, m.err
}

// memCartStore and memProductStore back the real services in router tests.
type memCartStore struct {
	mu    sync.Mutex
	carts map[domain.CartID]domain.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[domain.CartID]domain.Cart{}}
}

func (s *memCartStore) EnsureCart(_ context.Context, id domain.CartID) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		c = domain.Cart{ID: id, Items: []domain.CartItem{}}
		s.carts[id] = c
	}
	c.Items = append([]domain.CartItem{}, c.Items...)
	return &c, nil
}

func (s *memCartStore) GetCart(_ context.Context, id domain.CartID) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	c.Items = append([]domain.CartItem{}, c.Items...)
	return &c, nil
}

func (s *memCartStore) SaveCart(_ context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *cart
	c.Items = append([]domain.CartItem{}, cart.Items...)
	s.carts[cart.ID] = c
	return nil
}

func (s *memCartStore) ClearCart(_ context.Context, id domain.CartID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return repository.ErrCartNotFound
	}
	c.Items = []domain.CartItem{}
	s.carts[id] = c
	return nil
}

type memProductStore struct {
	products []domain.Product
}

func (s *memProductStore) GetAllProducts(context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *memProductStore) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (s *memProductStore) CountProducts(context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func (s *memProductStore) InsertProducts(_ context.Context, products []domain.Product) error {
	s.products = append(s.products, products...)
	return nil
}
