package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/dto"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	OrderCreatedKey = "order.created"
	publishTimeout  = 5 * time.Second
)

var ErrBrokerUnavailable = errors.New("order events broker unavailable")

// Channel is the part of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher interface {
	PublishOrderCreated(ctx context.Context, event dto.OrderCreatedEvent) error
	Close() error
}

// Noop drops events. Used when no broker is configured.
type Noop struct{}

func (Noop) PublishOrderCreated(context.Context, dto.OrderCreatedEvent) error { return nil }

func (Noop) Close() error { return nil }

type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
	breaker  *gobreaker.CircuitBreaker[struct{}]
	mu       sync.Mutex
}

// Dial connects to the broker and declares the durable topic exchange the
// order events go to.
func Dial(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	p := NewAMQPPublisher(ch, exchange)
	p.conn = conn
	zap.L().Info("connected to order events broker", zap.String("exchange", exchange))
	return p, nil
}

func NewAMQPPublisher(ch Channel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{
		ch:       ch,
		exchange: exchange,
		breaker:  newBreaker("order-events"),
	}
}

// newBreaker opens after at least three requests with 60% of them failed.
func newBreaker(name string) *gobreaker.CircuitBreaker[struct{}] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		zap.L().Warn("circuit breaker state changed",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	}
	return gobreaker.NewCircuitBreaker[struct{}](st)
}

func (p *AMQPPublisher) PublishOrderCreated(ctx context.Context, event dto.OrderCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.publish(ctx, event.EventID, body)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrBrokerUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}

	zap.L().Debug("order event published", zap.Int("order_id", event.OrderID), zap.String("event_id", event.EventID))
	return nil
}

// publish serializes access to the channel, amqp channels are not safe for
// concurrent publishing.
func (p *AMQPPublisher) publish(ctx context.Context, id string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx,
		p.exchange,      // exchange
		OrderCreatedKey, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			MessageId:    id,
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
