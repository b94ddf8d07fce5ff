package publisher

import (
	"context"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
)

type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error
	Close() error
}

// Noop drops every event. Used when no Kafka brokers are configured.
type Noop struct{}

func (Noop) PublishCheckout(context.Context, domain.CheckoutEvent) error { return nil }
func (Noop) Close() error                                               { return nil }
