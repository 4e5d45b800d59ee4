package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"taskboard-api/internal/task/repository"
	"taskboard-api/pkg/log"
)

// ExchangeType is the exchange kind task events are published to.
const ExchangeType = "topic"

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type implPublisher struct {
	ch       Channel
	exchange string
	l        log.Logger
}

var _ repository.EventRepository = (*implPublisher)(nil)

// New creates an EventRepository publishing to exchange over ch.
func New(ch Channel, exchange string, l log.Logger) repository.EventRepository {
	if ch == nil {
		panic("task/repository/rabbitmq: channel is required")
	}
	return &implPublisher{ch: ch, exchange: exchange, l: l}
}

// DeclareExchange declares the durable topic exchange task events go to.
func DeclareExchange(ch *amqp.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, ExchangeType, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return nil
}

func (p *implPublisher) dsn(method string) string {
	return fmt.Sprintf("task/repository/rabbitmq.%s", method)
}

type nopPublisher struct{}

// NewNop returns an EventRepository that drops every event.
func NewNop() repository.EventRepository {
	return nopPublisher{}
}

func (nopPublisher) PublishTaskEvent(context.Context, repository.PublishTaskEventOptions) error {
	return nil
}
