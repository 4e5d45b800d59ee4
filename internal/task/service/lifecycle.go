package service

import (
	"context"
	"fmt"
	"time"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
)

// Create stores a new open task. Zero column and swimlane ids resolve to
// the project's first column and first active swimlane, an empty color
// to the project default, and the task is appended to its column.
func (s *implService) Create(ctx context.Context, f *task.Fields) (int64, error) {
	projectID, _ := f.Int64(task.FieldProjectID)
	project, err := s.repo.GetOneProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	if project.ID == 0 {
		return 0, fmt.Errorf("%w: project %d does not exist", task.ErrInvalidInput, projectID)
	}

	opt := repository.CreateTaskOptions{
		ProjectID: projectID,
		Now:       s.now(),
	}
	opt.Title, _ = f.String(task.FieldTitle)
	opt.Description, _ = f.String(task.FieldDescription)
	opt.Reference, _ = f.String(task.FieldReference)
	opt.ColumnID, _ = f.Int64(task.FieldColumnID)
	opt.SwimlaneID, _ = f.Int64(task.FieldSwimlaneID)
	opt.CategoryID, _ = f.Int64(task.FieldCategoryID)
	opt.OwnerID, _ = f.Int64(task.FieldOwnerID)
	opt.CreatorID, _ = f.Int64(task.FieldCreatorID)
	opt.Score, _ = f.Int(task.FieldScore)
	opt.Priority, _ = f.Int(task.FieldPriority)
	opt.RecurrenceStatus, _ = f.Int(task.FieldRecurrenceStatus)
	opt.RecurrenceTrigger, _ = f.Int(task.FieldRecurrenceTrigger)
	opt.RecurrenceFactor, _ = f.Int(task.FieldRecurrenceFactor)
	opt.RecurrenceTimeframe, _ = f.Int(task.FieldRecurrenceTimeframe)
	opt.RecurrenceBasedate, _ = f.Int(task.FieldRecurrenceBasedate)

	colorID, _ := f.String(task.FieldColorID)
	if colorID == "" {
		colorID = project.DefaultTaskColorID
	}
	opt.ColorID = model.NormalizeColorID(colorID)

	if raw, _ := f.String(task.FieldDateDue); raw != "" {
		due, err := s.dates.Parse(raw, opt.Now)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", task.ErrInvalidInput, err)
		}
		opt.DateDue = &due
	}

	if opt.ColumnID, err = s.resolveColumn(ctx, projectID, opt.ColumnID, ""); err != nil {
		return 0, err
	}
	if opt.SwimlaneID, err = s.resolveSwimlane(ctx, projectID, opt.SwimlaneID, ""); err != nil {
		return 0, err
	}

	if opt.Position, err = s.nextPosition(ctx, projectID, opt.ColumnID, opt.SwimlaneID); err != nil {
		return 0, err
	}

	id, err := s.repo.CreateTask(ctx, opt)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, EventCreate, model.Task{ID: id, ProjectID: projectID}, f.Map())
	return id, nil
}

// Update writes the supplied fields of f to the task named by its id.
func (s *implService) Update(ctx context.Context, f *task.Fields) (bool, error) {
	id, _ := f.Int64(task.FieldID)
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	now := s.now()
	values := make(map[string]any, f.Len())
	changes := make(map[string]any, f.Len())
	for _, name := range f.Keys() {
		if name == task.FieldID {
			continue
		}
		v, _ := f.Get(name)
		switch name {
		case task.FieldDateDue:
			raw, _ := v.(string)
			due, err := s.parseDue(raw, now)
			if err != nil {
				return false, err
			}
			values[name] = due
		case task.FieldColorID:
			raw, _ := v.(string)
			v = model.NormalizeColorID(raw)
			values[name] = v
		default:
			values[name] = v
		}
		changes[name] = v
	}
	if len(values) == 0 {
		return true, nil
	}
	values["date_modification"] = now

	if err := s.repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: id, Values: values}); err != nil {
		return false, err
	}

	s.publish(ctx, EventUpdate, t, changes)
	return true, nil
}

// Remove deletes a task.
func (s *implService) Remove(ctx context.Context, taskID int64) (bool, error) {
	t, err := s.GetByID(ctx, taskID)
	if err != nil {
		return false, err
	}

	ok, err := s.repo.DeleteTask(ctx, taskID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, task.ErrTaskNotFound
	}

	s.publish(ctx, EventRemove, t, nil)
	return true, nil
}

// parseDue returns nil for an empty string, which clears the due date.
func (s *implService) parseDue(raw string, now time.Time) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	due, err := s.dates.Parse(raw, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrInvalidInput, err)
	}
	return &due, nil
}

func (s *implService) nextPosition(ctx context.Context, projectID, columnID, swimlaneID int64) (int, error) {
	pos, err := s.repo.GetMaxPosition(ctx, repository.GetMaxPositionOptions{
		ProjectID:  projectID,
		ColumnID:   columnID,
		SwimlaneID: swimlaneID,
	})
	if err != nil {
		return 0, err
	}
	return pos + 1, nil
}
