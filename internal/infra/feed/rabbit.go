package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"salonflow/internal/pkg/config"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher fans instance snapshots out on a topic exchange with routing key
// booking.<booking_id>.instance, so devices can bind per booking.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(cfg config.FeedConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func (p *Publisher) PublishInstance(ctx context.Context, event InstanceEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("booking.%s.instance", event.BookingID)
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Subscriber consumes instance snapshots for one or more bookings and hands
// them to a callback. Messages are acked after the callback returns; a
// redelivered message is harmless because merges are version-gated.
type Subscriber struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
}

func NewSubscriber(cfg config.FeedConfig) (*Subscriber, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(cfg.Queue, false, true, true, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	return &Subscriber{conn: conn, ch: ch, exchange: cfg.Exchange, queue: q.Name}, nil
}

// Subscribe binds this device's queue to one booking's instance events and
// pumps deliveries into handler until ctx is done.
func (s *Subscriber) Subscribe(ctx context.Context, bookingID uuid.UUID, handler func(InstanceEvent)) error {
	key := fmt.Sprintf("booking.%s.instance", bookingID)
	if err := s.ch.QueueBind(s.queue, key, s.exchange, false, nil); err != nil {
		return fmt.Errorf("bind %s: %w", key, err)
	}

	deliveries, err := s.ch.ConsumeWithContext(ctx, s.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	go func() {
		for d := range deliveries {
			var event InstanceEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				slog.Warn("dropping malformed instance event", "error", err)
				_ = d.Nack(false, false)
				continue
			}
			handler(event)
			_ = d.Ack(false)
		}
	}()

	return nil
}

func (s *Subscriber) Close() error {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
