package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/publisher"
	"go.uber.org/zap"
)

type CartClearer interface {
	ClearCart(ctx context.Context, id domain.CartID) error
}

type CheckoutRequest struct {
	CartID        domain.CartID
	CustomerName  string
	CustomerEmail string
	Items         []domain.CartItem
}

// CheckoutService builds receipts from the items the caller submits. The
// items are not compared with the stored cart, which is emptied either way.
type CheckoutService struct {
	carts     CartClearer
	publisher publisher.CheckoutPublisher
	log       *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewCheckoutService(carts CartClearer, pub publisher.CheckoutPublisher, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		publisher: pub,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.NewString() },
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*domain.Receipt, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	receipt := &domain.Receipt{
		OrderID:       s.newID(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         req.Items,
		Total:         domain.FormatTotal(req.Items),
		Timestamp:     s.now(),
		Message:       domain.ReceiptMessage,
	}

	if err := s.carts.ClearCart(ctx, req.CartID); err != nil {
		return nil, err
	}

	event := domain.CheckoutEvent{
		OrderID:   receipt.OrderID,
		CartID:    req.CartID,
		Total:     receipt.Total,
		ItemCount: len(receipt.Items),
		Timestamp: receipt.Timestamp,
	}
	if err := s.publisher.PublishCheckout(ctx, event); err != nil {
		// the cart is already cleared; the receipt still stands
		s.log.Warn("checkout event not published", zap.String("order_id", receipt.OrderID), zap.Error(err))
	}

	s.log.Info("checkout completed",
		zap.String("order_id", receipt.OrderID),
		zap.String("cart_id", string(req.CartID)),
		zap.String("total", receipt.Total),
		zap.Int("items", len(receipt.Items)))
	return receipt, nil
}
