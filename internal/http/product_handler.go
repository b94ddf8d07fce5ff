package http

import (
	"context"
	"net/http"
	"time"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"go.uber.org/zap"
)

type ProductLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type ProductHandler struct {
	products ProductLister
	timeout  time.Duration
	log      *zap.Logger
}

func NewProductHandler(products ProductLister, timeout time.Duration, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		timeout:  timeout,
		log:      log,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		handleServiceError(w, h.log, err, "Error fetching products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}
