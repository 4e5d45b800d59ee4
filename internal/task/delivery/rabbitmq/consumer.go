package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	eventRepo "taskboard-api/internal/task/repository/rabbitmq"
	"taskboard-api/pkg/log"
)

// BindingKey matches every task event.
const BindingKey = "task.#"

// Source is the subset of *amqp.Channel the consumer needs.
type Source interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Consumer struct {
	l     log.Logger
	src   Source
	queue string
}

// New creates an audit consumer reading from queue.
func New(l log.Logger, src Source, queue string) *Consumer {
	return &Consumer{l: l, src: src, queue: queue}
}

// DeclareQueue declares a durable queue bound to every task event on
// exchange.
func DeclareQueue(ch *amqp.Channel, exchange, queue string) error {
	if err := eventRepo.DeclareExchange(ch, exchange); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %q: %w", queue, err)
	}
	if err := ch.QueueBind(queue, BindingKey, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %q: %w", queue, err)
	}
	return nil
}

// Start consumes until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.src.Consume(c.queue, "taskboard-audit", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %q: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.Handle(ctx, d)
		}
	}
}

// Handle writes one audit line per event. Undecodable messages are
// rejected without requeue.
func (c *Consumer) Handle(ctx context.Context, d amqp.Delivery) {
	var msg eventRepo.Message
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.l.Warnf(ctx, "audit: drop malformed message %q: %v", d.MessageId, err)
		if nackErr := d.Nack(false, false); nackErr != nil {
			c.l.Errorf(ctx, "audit: nack: %v", nackErr)
		}
		return
	}

	c.l.Infof(ctx, "audit: %s task=%d project=%d at=%s changes=%v",
		msg.Name, msg.TaskID, msg.ProjectID, msg.At.Format("2006-01-02T15:04:05Z07:00"), msg.Changes)

	if err := d.Ack(false); err != nil {
		c.l.Errorf(ctx, "audit: ack: %v", err)
	}
}
