package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/pkg/logger"
	"go.uber.org/zap"
)

type CartManager interface {
	GetCart(ctx context.Context, id domain.CartID) (*domain.Cart, error)
	AddItem(ctx context.Context, id domain.CartID, productID string, qty int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, id domain.CartID, productID string) (*domain.Cart, error)
	ComputeTotal(items []domain.CartItem) string
}

// CartHandler serves the single deployment cart identified by cartID.
type CartHandler struct {
	carts   CartManager
	cartID  domain.CartID
	timeout time.Duration
	log     *zap.Logger
}

func NewCartHandler(carts CartManager, cartID domain.CartID, timeout time.Duration, log *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		cartID:  cartID,
		timeout: timeout,
		log:     log,
	}
}

var validate = validator.New()

type AddItemRequestDTO struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty" validate:"gt=0"`
}

type CartResponse struct {
	Cart  []domain.CartItem `json:"cart"`
	Total string            `json:"total"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cart, err := h.carts.GetCart(ctx, h.cartID)
	if err != nil {
		handleServiceError(w, logger.WithTrace(ctx, h.log), err, "Error fetching cart")
		return
	}

	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	respondJSON(w, http.StatusOK, CartResponse{
		Cart:  items,
		Total: h.carts.ComputeTotal(items),
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_input", "Product ID and quantity (must be > 0) are required.")
		return
	}

	cart, err := h.carts.AddItem(ctx, h.cartID, req.ProductID, req.Qty)
	if err != nil {
		handleServiceError(w, logger.WithTrace(ctx, h.log), err, "Error adding item to cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "productId")

	cart, err := h.carts.RemoveItem(ctx, h.cartID, productID)
	if err != nil {
		handleServiceError(w, logger.WithTrace(ctx, h.log), err, "Error removing item from cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}
