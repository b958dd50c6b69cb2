package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Zaclee030314/pawradise-1/internal/cart"
)

// Snapshot is the terminal "checkout requested" payload. Checkout itself
// (payment, inventory, orders) happens elsewhere; this package only emits
// the signal with the cart frozen at request time.
type Snapshot struct {
	RequestID   string          `json:"request_id"`
	Items       []cart.LineItem `json:"items"`
	TotalAmount float64         `json:"total_amount"`
	RequestedAt time.Time       `json:"requested_at"`
}

// NewSnapshot freezes the engine's current cart into a signal payload.
func NewSnapshot(e *cart.Engine) Snapshot {
	return Snapshot{
		RequestID:   uuid.New().String(),
		Items:       e.LineItems(),
		TotalAmount: e.TotalAmount(),
		RequestedAt: time.Now(),
	}
}

type Signaler interface {
	CheckoutRequested(ctx context.Context, snapshot Snapshot) error
}

// messageWriter is the slice of kafka.Writer the signaler needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaSignaler publishes checkout requests to the checkout-requested topic.
type KafkaSignaler struct {
	writer messageWriter
}

func NewKafkaSignaler(brokers ...string) *KafkaSignaler {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "checkout-requested",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaSignaler{writer: w}
}

func (s *KafkaSignaler) CheckoutRequested(ctx context.Context, snapshot Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout snapshot: %w", err)
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(snapshot.RequestID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish checkout request: %w", err)
	}

	return nil
}

func (s *KafkaSignaler) Close() error {
	if w, ok := s.writer.(*kafka.Writer); ok {
		return w.Close()
	}
	return nil
}

// LogSignaler stands in when no broker is configured; the signal is still
// observable in the logs.
type LogSignaler struct{}

func (LogSignaler) CheckoutRequested(_ context.Context, snapshot Snapshot) error {
	log.Printf("checkout requested: id=%s items=%d total=%.2f", snapshot.RequestID, len(snapshot.Items), snapshot.TotalAmount)
	return nil
}
