package service

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task/repository"
	"taskboard-api/pkg/optional"
)

// MovePosition places a task at position (1-based) inside a column and
// swimlane, renumbering the affected open tasks 1..n. A zero swimlaneID
// keeps the current swimlane. It returns false when the target is not
// on the task's board and true without moving for closed tasks.
func (s *implService) MovePosition(ctx context.Context, projectID, taskID, columnID int64, position int, swimlaneID int64) (bool, error) {
	if position < 1 {
		return false, nil
	}

	t, err := s.GetByID(ctx, taskID)
	if err != nil {
		return false, err
	}
	if t.ProjectID != projectID {
		return false, nil
	}
	if !t.IsOpen() {
		return true, nil
	}
	if swimlaneID == 0 {
		swimlaneID = t.SwimlaneID
	}

	column, err := s.repo.GetOneColumn(ctx, repository.GetOneColumnOptions{ID: columnID})
	if err != nil {
		return false, err
	}
	if column.ID == 0 || column.ProjectID != projectID {
		return false, nil
	}
	swimlane, err := s.repo.GetOneSwimlane(ctx, repository.GetOneSwimlaneOptions{ID: swimlaneID})
	if err != nil {
		return false, err
	}
	if swimlane.ID == 0 || swimlane.ProjectID != projectID {
		return false, nil
	}

	if t.ColumnID == columnID && t.SwimlaneID == swimlaneID && t.Position == position {
		return true, nil
	}

	source, err := s.laneTasks(ctx, projectID, t.ColumnID, t.SwimlaneID)
	if err != nil {
		return false, err
	}
	dest := source
	if t.ColumnID != columnID || t.SwimlaneID != swimlaneID {
		if dest, err = s.laneTasks(ctx, projectID, columnID, swimlaneID); err != nil {
			return false, err
		}
	}

	placements := reorder(source, dest, t, columnID, swimlaneID, position)
	if len(placements) == 0 {
		return true, nil
	}
	if err := s.repo.ReorderTasks(ctx, repository.ReorderTasksOptions{Placements: placements, Now: s.now()}); err != nil {
		return false, err
	}

	event := EventMovePosition
	switch {
	case t.ColumnID != columnID:
		event = EventMoveColumn
	case t.SwimlaneID != swimlaneID:
		event = EventMoveSwimlane
	}
	s.publish(ctx, event, t, map[string]any{
		"src_column_id":   t.ColumnID,
		"dst_column_id":   columnID,
		"src_swimlane_id": t.SwimlaneID,
		"dst_swimlane_id": swimlaneID,
		"src_position":    t.Position,
		"dst_position":    position,
	})
	return true, nil
}

func (s *implService) laneTasks(ctx context.Context, projectID, columnID, swimlaneID int64) ([]model.Task, error) {
	return s.repo.ListTasks(ctx, repository.ListTasksOptions{
		ProjectID:  projectID,
		Status:     optional.Of(model.TaskStatusOpen),
		ColumnID:   optional.Of(columnID),
		SwimlaneID: optional.Of(swimlaneID),
		OrderBy:    "position ASC, id ASC",
	})
}

// reorder computes the placements needed to move t to position in the
// destination lane. source and dest are the open tasks of t's current
// lane and of the destination lane, ordered by position; they may be the
// same slice. Only tasks whose placement changes are returned.
func reorder(source, dest []model.Task, t model.Task, columnID, swimlaneID int64, position int) []repository.TaskPlacement {
	sameLane := t.ColumnID == columnID && t.SwimlaneID == swimlaneID

	without := func(tasks []model.Task) []model.Task {
		out := make([]model.Task, 0, len(tasks))
		for _, x := range tasks {
			if x.ID != t.ID {
				out = append(out, x)
			}
		}
		return out
	}

	lane := without(dest)
	idx := position - 1
	if idx > len(lane) {
		idx = len(lane)
	}
	lane = append(lane[:idx], append([]model.Task{t}, lane[idx:]...)...)

	var placements []repository.TaskPlacement
	for i, x := range lane {
		p := repository.TaskPlacement{ID: x.ID, ColumnID: columnID, SwimlaneID: swimlaneID, Position: i + 1}
		if x.ID == t.ID {
			p.Moved = true
			placements = append(placements, p)
			continue
		}
		if x.Position != p.Position {
			placements = append(placements, p)
		}
	}

	if !sameLane {
		for i, x := range without(source) {
			if x.Position != i+1 {
				placements = append(placements, repository.TaskPlacement{
					ID:         x.ID,
					ColumnID:   x.ColumnID,
					SwimlaneID: x.SwimlaneID,
					Position:   i + 1,
				})
			}
		}
	}
	return placements
}
