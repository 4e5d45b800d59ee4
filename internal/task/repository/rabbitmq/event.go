package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"taskboard-api/internal/task/repository"
)

// Message is the JSON body of a task event. The routing key is Name.
type Message struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	TaskID    int64          `json:"task_id"`
	ProjectID int64          `json:"project_id"`
	Changes   map[string]any `json:"changes,omitempty"`
	At        time.Time      `json:"at"`
}

// PublishTaskEvent publishes one persistent JSON message.
func (p *implPublisher) PublishTaskEvent(ctx context.Context, opt repository.PublishTaskEventOptions) error {
	msg := Message{
		ID:        uuid.NewString(),
		Name:      opt.Name,
		TaskID:    opt.TaskID,
		ProjectID: opt.ProjectID,
		Changes:   opt.Changes,
		At:        opt.At.UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		p.l.Errorf(ctx, "%s marshal: %v", p.dsn("PublishTaskEvent"), err)
		return repository.ErrFailedToPublish
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, opt.Name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Timestamp:    msg.At,
		Type:         opt.Name,
		Body:         body,
	})
	if err != nil {
		p.l.Errorf(ctx, "%s: %v", p.dsn("PublishTaskEvent"), err)
		return repository.ErrFailedToPublish
	}
	return nil
}
