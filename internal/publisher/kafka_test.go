package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"github.com/luckkalpna/Vibe-Commerce-Cart/pkg/circuitbreaker"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockWriter struct {
	m      sync.Mutex
	msgs   []kafka.Message
	calls  int
	err    error
	closed bool
}

func (w *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.m.Lock()
	defer w.m.Unlock()
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *mockWriter) Close() error {
	w.m.Lock()
	defer w.m.Unlock()
	w.closed = true
	return nil
}

func testEvent() domain.CheckoutEvent {
	return domain.CheckoutEvent{
		OrderID:   "order-1",
		CartID:    domain.DefaultCartID,
		Total:     "29.97",
		ItemCount: 1,
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPublishCheckout_WritesMessage(t *testing.T) {
	w := &mockWriter{}
	p := newKafkaPublisher(w, circuitbreaker.DefaultConfig("test"), zap.NewNop())

	err := p.PublishCheckout(context.Background(), testEvent())
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, []byte("default"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, eventTypeCheckoutCompleted, string(msg.Headers[0].Value))

	var got domain.CheckoutEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, testEvent(), got)
}

func TestPublishCheckout_WriterError(t *testing.T) {
	w := &mockWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(w, circuitbreaker.DefaultConfig("test"), zap.NewNop())

	err := p.PublishCheckout(context.Background(), testEvent())
	require.ErrorContains(t, err, "broker down")
}

func TestPublishCheckout_BreakerOpensAfterFailures(t *testing.T) {
	w := &mockWriter{err: errors.New("broker down")}
	cfg := circuitbreaker.Config{Name: "test", MaxFailures: 3, OpenTimeout: time.Minute}
	p := newKafkaPublisher(w, cfg, zap.NewNop())

	for i := 0; i < 3; i++ {
		require.Error(t, p.PublishCheckout(context.Background(), testEvent()))
	}

	err := p.PublishCheckout(context.Background(), testEvent())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, w.calls, "open breaker must not reach the writer")
}

func TestClose(t *testing.T) {
	w := &mockWriter{}
	p := newKafkaPublisher(w, circuitbreaker.DefaultConfig("test"), zap.NewNop())

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNoop(t *testing.T) {
	var p CheckoutPublisher = Noop{}
	assert.NoError(t, p.PublishCheckout(context.Background(), testEvent()))
	assert.NoError(t, p.Close())
}
