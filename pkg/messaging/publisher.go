// Package messaging publishes seat inventory events to RabbitMQ.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	RoutingSeatReserved = "seat.reserved"
	RoutingSeatReleased = "seat.released"
)

// SeatEvent is the body of every seat.* message.
type SeatEvent struct {
	HallID         string    `json:"hall_id"`
	SeatID         string    `json:"seat_id"`
	AvailableCount int       `json:"available_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
func (NopPublisher) Close() error                               { return nil }

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// AMQPPublisher sends persistent JSON messages through the default exchange,
// one durable queue per routing key.
type AMQPPublisher struct {
	openChannel func() (amqpChannel, error)
	closeConn   func() error
	log         *zap.Logger

	mu sync.Mutex
	ch amqpChannel
}

func newAMQPPublisher(ch amqpChannel, openChannel func() (amqpChannel, error), closeConn func() error, log *zap.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		openChannel: openChannel,
		closeConn:   closeConn,
		ch:          ch,
		log:         log.With(zap.String("component", "publisher")),
	}
}

// NewPublisher dials url and declares the seat queues. An empty url yields a NopPublisher.
func NewPublisher(url string, log *zap.Logger) (Publisher, error) {
	if url == "" {
		return NopPublisher{}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	for _, name := range []string{RoutingSeatReserved, RoutingSeatReleased} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("declare queue %s: %w", name, err)
		}
	}

	reopen := func() (amqpChannel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		return ch, nil
	}
	return newAMQPPublisher(ch, reopen, conn.Close, log), nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", routingKey, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch.IsClosed() {
		ch, err := p.openChannel()
		if err != nil {
			return fmt.Errorf("reopen channel: %w", err)
		}
		p.ch = ch
		p.log.Warn("Reopened broker channel")
	}

	if err := p.ch.PublishWithContext(ctx, "", routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		p.log.Warn("Failed to close broker channel", zap.Error(err))
	}
	return p.closeConn()
}
