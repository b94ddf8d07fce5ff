package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/service"
	"github.com/luckkalpna/Vibe-Commerce-Cart/pkg/logger"
	"go.uber.org/zap"
)

type CheckoutProcessor interface {
	Checkout(ctx context.Context, req service.CheckoutRequest) (*domain.Receipt, error)
}

type CheckoutHandler struct {
	checkout CheckoutProcessor
	cartID   domain.CartID
	timeout  time.Duration
	log      *zap.Logger
}

func NewCheckoutHandler(checkout CheckoutProcessor, cartID domain.CartID, timeout time.Duration, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		cartID:   cartID,
		timeout:  timeout,
		log:      log,
	}
}

type CheckoutRequestDTO struct {
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	CartItems []domain.CartItem `json:"cartItems"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	receipt, err := h.checkout.Checkout(ctx, service.CheckoutRequest{
		CartID:        h.cartID,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Items:         req.CartItems,
	})
	if err != nil {
		handleServiceError(w, logger.WithTrace(ctx, h.log), err, "Error during checkout")
		return
	}

	respondJSON(w, http.StatusOK, receipt)
}
