package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/pkg/circuitbreaker"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const eventTypeCheckoutCompleted = "checkout.completed"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes checkout events to a topic. Writes go through a
// circuit breaker so a dead broker fails fast instead of stalling checkouts.
type KafkaPublisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	log     *zap.Logger
}

func NewKafkaPublisher(topic string, log *zap.Logger, brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, circuitbreaker.DefaultConfig("kafka-"+topic), log)
}

func newKafkaPublisher(w messageWriter, cfg circuitbreaker.Config, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:  w,
		breaker: circuitbreaker.New[struct{}](cfg, log),
		log:     log,
	}
}

func (p *KafkaPublisher) PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.CartID), // per-cart ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventTypeCheckoutCompleted)},
		},
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to publish checkout event: %w", err)
	}

	p.log.Debug("checkout event published", zap.String("order_id", event.OrderID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}
	return nil
}
