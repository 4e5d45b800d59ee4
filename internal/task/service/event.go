package service

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task/repository"
)

// Task event names, also used as routing keys.
const (
	EventCreate       = "task.create"
	EventUpdate       = "task.update"
	EventOpen         = "task.open"
	EventClose        = "task.close"
	EventRemove       = "task.remove"
	EventMovePosition = "task.move.position"
	EventMoveColumn   = "task.move.column"
	EventMoveSwimlane = "task.move.swimlane"
	EventMoveProject  = "task.move.project"
	EventDuplicate    = "task.duplicate"
)

// publish sends a task event. Failures are logged and never returned.
func (s *implService) publish(ctx context.Context, name string, t model.Task, changes map[string]any) {
	err := s.events.PublishTaskEvent(ctx, repository.PublishTaskEventOptions{
		Name:      name,
		TaskID:    t.ID,
		ProjectID: t.ProjectID,
		Changes:   changes,
		At:        s.now(),
	})
	if err != nil {
		s.l.Warnf(ctx, "service.publish %s task %d: %v", name, t.ID, err)
	}
}
