package service

import (
	"context"
	"errors"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/repository"
	"go.uber.org/zap"
)

// DefaultCatalog is inserted by SeedIfEmpty on a fresh deployment.
var DefaultCatalog = []domain.Product{
	{Name: "Wireless Headphones", Price: 99.99},
	{Name: "Smartwatch", Price: 199.99},
	{Name: "Ergonomic Keyboard", Price: 75.00},
	{Name: "Portable SSD 1TB", Price: 120.00},
	{Name: "Gaming Mouse", Price: 49.99},
	{Name: "USB-C Hub", Price: 35.00},
	{Name: "Webcam 1080p", Price: 60.00},
}

type CatalogService struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewCatalogService(repo repository.ProductRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{
		repo: repo,
		log:  log,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.GetAllProducts(ctx)
	if err != nil {
		s.log.Error("repo list products error", zap.Error(err))
		return nil, dataAccess(err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		s.log.Error("repo get product error", zap.String("product_id", id), zap.Error(err))
		return nil, dataAccess(err)
	}
	return p, nil
}

// SeedIfEmpty inserts products only when the catalog holds none and returns
// how many were inserted.
func (s *CatalogService) SeedIfEmpty(ctx context.Context, products []domain.Product) (int, error) {
	n, err := s.repo.CountProducts(ctx)
	if err != nil {
		return 0, dataAccess(err)
	}
	if n > 0 {
		return 0, nil
	}

	if err := s.repo.InsertProducts(ctx, products); err != nil {
		return 0, dataAccess(err)
	}

	s.log.Info("products seeded", zap.Int("count", len(products)))
	return len(products), nil
}
