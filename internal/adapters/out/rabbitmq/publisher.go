// Package rabbitmq publishes ride domain events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"rides/internal/core/domain/model/ride"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	publishTimeout = 5 * time.Second
	maxDialRetries = 5
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.EventPublisher. amqp channels are not safe for
// concurrent publishing, so calls are serialized.
type Publisher struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
	logger   *slog.Logger

	mu sync.Mutex
}

// NewPublisher publishes on an already opened channel.
func NewPublisher(ch Channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}
}

// Dial connects to url, retrying with backoff until ctx is done, and
// declares exchange as a durable topic exchange.
func Dial(ctx context.Context, url string, exchange string, logger *slog.Logger) (*Publisher, error) {
	var (
		conn *amqp.Connection
		err  error
	)

	delay := time.Second
	for attempt := 1; attempt <= maxDialRetries; attempt++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}

		logger.WarnContext(ctx, "RabbitMQ connection failed",
			"attempt", attempt,
			"max_retries", maxDialRetries,
			"error", err,
		)
		if attempt == maxDialRetries {
			return nil, fmt.Errorf("connect to rabbitmq after %d attempts: %w", maxDialRetries, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	p := NewPublisher(ch, exchange, logger)
	p.conn = conn
	p.logger.InfoContext(ctx, "Connected to RabbitMQ", "exchange", exchange)
	return p, nil
}

// Publish sends every event, continuing past failures, and returns the
// joined errors.
func (p *Publisher) Publish(ctx context.Context, events ...ride.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, e := range events {
		if err := p.publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *Publisher) publish(ctx context.Context, e ride.Event) error {
	key, msg, err := newPublishing(e)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, msg); err != nil {
		return fmt.Errorf("publish %s for ride %s: %w", e.Type, e.Ride.ID, err)
	}

	p.logger.DebugContext(ctx, "Event published", "routing_key", key, "ride_id", e.Ride.ID.String())
	return nil
}

// Close closes the channel and, when Dial opened it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
