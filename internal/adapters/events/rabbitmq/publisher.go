// Package rabbitmq publica los eventos de paseos en una cola durable.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"dog-walk-service/internal/domain/walks"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel es el subconjunto de *amqp.Channel que usa el publisher.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn  *amqp.Connection
	mu    sync.Mutex // amqp.Channel no es seguro para publicar en paralelo
	ch    channel
	queue string
}

// Dial abre conexión y canal, y declara la cola (idempotente).
func Dial(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare %s: %w", queue, err)
	}

	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

type message struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	RequestID     int64     `json:"request_id"`
	ApplicationID int64     `json:"application_id,omitempty"`
	WalkerID      int64     `json:"walker_id,omitempty"`
	Rating        int       `json:"rating,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (p *Publisher) Publish(ctx context.Context, e walks.Event) error {
	body, err := json.Marshal(message{
		ID:            e.ID,
		Type:          string(e.Type),
		RequestID:     e.RequestID,
		ApplicationID: e.ApplicationID,
		WalkerID:      e.WalkerID,
		Rating:        e.Rating,
		OccurredAt:    e.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq marshal %s: %w", e.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = nombre de la cola
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ID,
			Type:         string(e.Type),
			Timestamp:    e.OccurredAt.UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq publish %s: %w", e.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var chErr, connErr error
	if p.ch != nil {
		chErr = p.ch.Close()
	}
	if p.conn != nil {
		connErr = p.conn.Close()
	}
	if chErr != nil {
		return chErr
	}
	return connErr
}
