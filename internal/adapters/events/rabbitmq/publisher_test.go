package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dog-walk-service/internal/domain/walks"

	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.key = key
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublish_PersistentJSONToQueue(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queue: "walk.events"}

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), walks.Event{
		ID:            "evt-1",
		Type:          walks.EventRated,
		RequestID:     1,
		ApplicationID: 3,
		WalkerID:      2,
		Rating:        5,
		OccurredAt:    at,
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if ch.exchange != "" || ch.key != "walk.events" {
		t.Fatalf("expected default exchange and queue routing key, got %q/%q", ch.exchange, ch.key)
	}
	if len(ch.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(ch.msgs))
	}
	msg := ch.msgs[0]
	if msg.DeliveryMode != amqp.Persistent || msg.MessageId != "evt-1" || msg.Type != "walk.rated" {
		t.Fatalf("unexpected publishing: %+v", msg)
	}

	var body map[string]any
	if err := json.Unmarshal(msg.Body, &body); err != nil {
		t.Fatalf("body is not json: %v", err)
	}
	if body["rating"] != float64(5) || body["walker_id"] != float64(2) {
		t.Fatalf("unexpected body: %s", string(msg.Body))
	}
}

func TestPublish_WrapsBrokerError(t *testing.T) {
	boom := errors.New("channel closed")
	p := &Publisher{ch: &fakeChannel{err: boom}, queue: "walk.events"}

	err := p.Publish(context.Background(), walks.Event{Type: walks.EventCancelled, RequestID: 9})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
}

func TestClose_ClosesChannel(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch}
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !ch.closed {
		t.Fatalf("expected channel closed")
	}
}
