package service

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task/repository"
)

// Open reopens a closed task and clears its completion date. Opening an
// open task is a no-op.
func (s *implService) Open(ctx context.Context, taskID int64) (bool, error) {
	t, err := s.GetByID(ctx, taskID)
	if err != nil {
		return false, err
	}
	if t.IsOpen() {
		return true, nil
	}

	err = s.repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: taskID, Values: map[string]any{
		"is_active":         model.TaskStatusOpen,
		"date_completed":    nil,
		"date_modification": s.now(),
	}})
	if err != nil {
		return false, err
	}

	s.publish(ctx, EventOpen, t, nil)
	return true, nil
}

// Close closes an open task and records its completion date. Closing a
// closed task is a no-op.
func (s *implService) Close(ctx context.Context, taskID int64) (bool, error) {
	t, err := s.GetByID(ctx, taskID)
	if err != nil {
		return false, err
	}
	if !t.IsOpen() {
		return true, nil
	}

	now := s.now()
	err = s.repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: taskID, Values: map[string]any{
		"is_active":         model.TaskStatusClosed,
		"date_completed":    now,
		"date_modification": now,
	}})
	if err != nil {
		return false, err
	}

	s.publish(ctx, EventClose, t, nil)
	return true, nil
}
