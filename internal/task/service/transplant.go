package service

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
)

// placement is where a transplanted task lands in the destination project.
type placement struct {
	columnID   int64
	swimlaneID int64
	categoryID int64
	ownerID    int64
	position   int
}

// MoveToProject moves a task into input.ProjectID. Ids that are not given
// are remapped by name, and the owner is kept only when assignable in the
// destination. It returns false when the destination project does not
// exist.
func (s *implService) MoveToProject(ctx context.Context, input task.TransplantInput) (bool, error) {
	t, err := s.GetByID(ctx, input.TaskID)
	if err != nil {
		return false, err
	}

	p, ok, err := s.resolvePlacement(ctx, t, input)
	if err != nil || !ok {
		return false, err
	}

	now := s.now()
	err = s.repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: t.ID, Values: map[string]any{
		"project_id":        input.ProjectID,
		"column_id":         p.columnID,
		"swimlane_id":       p.swimlaneID,
		"category_id":       p.categoryID,
		"owner_id":          p.ownerID,
		"position":          p.position,
		"date_moved":        now,
		"date_modification": now,
	}})
	if err != nil {
		return false, err
	}

	s.publish(ctx, EventMoveProject, model.Task{ID: t.ID, ProjectID: input.ProjectID}, map[string]any{
		"src_project_id": t.ProjectID,
		"dst_project_id": input.ProjectID,
	})
	return true, nil
}

// DuplicateToProject copies a task into input.ProjectID as a new open task
// and returns its id, or 0 when the destination project does not exist.
func (s *implService) DuplicateToProject(ctx context.Context, input task.TransplantInput) (int64, error) {
	t, err := s.GetByID(ctx, input.TaskID)
	if err != nil {
		return 0, err
	}

	p, ok, err := s.resolvePlacement(ctx, t, input)
	if err != nil || !ok {
		return 0, err
	}

	id, err := s.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:               t.Title,
		Description:         t.Description,
		ProjectID:           input.ProjectID,
		ColumnID:            p.columnID,
		SwimlaneID:          p.swimlaneID,
		CategoryID:          p.categoryID,
		OwnerID:             p.ownerID,
		CreatorID:           t.CreatorID,
		ColorID:             t.ColorID,
		Position:            p.position,
		Score:               t.Score,
		Priority:            t.Priority,
		DateDue:             t.DateDue,
		RecurrenceStatus:    t.RecurrenceStatus,
		RecurrenceTrigger:   t.RecurrenceTrigger,
		RecurrenceFactor:    t.RecurrenceFactor,
		RecurrenceTimeframe: t.RecurrenceTimeframe,
		RecurrenceBasedate:  t.RecurrenceBasedate,
		Now:                 s.now(),
	})
	if err != nil {
		return 0, err
	}

	s.publish(ctx, EventDuplicate, model.Task{ID: id, ProjectID: input.ProjectID}, map[string]any{
		"source_task_id":    t.ID,
		"source_project_id": t.ProjectID,
	})
	return id, nil
}

func (s *implService) resolvePlacement(ctx context.Context, t model.Task, input task.TransplantInput) (placement, bool, error) {
	project, err := s.repo.GetOneProject(ctx, input.ProjectID)
	if err != nil {
		return placement{}, false, err
	}
	if project.ID == 0 {
		return placement{}, false, nil
	}

	var p placement

	var columnTitle, swimlaneName, categoryName string
	if !input.ColumnID.IsSet() {
		src, err := s.repo.GetOneColumn(ctx, repository.GetOneColumnOptions{ID: t.ColumnID})
		if err != nil {
			return placement{}, false, err
		}
		columnTitle = src.Title
	}
	if !input.SwimlaneID.IsSet() {
		src, err := s.repo.GetOneSwimlane(ctx, repository.GetOneSwimlaneOptions{ID: t.SwimlaneID})
		if err != nil {
			return placement{}, false, err
		}
		swimlaneName = src.Name
	}
	if !input.CategoryID.IsSet() && t.CategoryID > 0 {
		src, err := s.repo.GetOneCategory(ctx, repository.GetOneCategoryOptions{ID: t.CategoryID})
		if err != nil {
			return placement{}, false, err
		}
		categoryName = src.Name
	}

	if p.columnID, err = s.resolveColumn(ctx, project.ID, input.ColumnID.OrElse(0), columnTitle); err != nil {
		return placement{}, false, err
	}
	if p.swimlaneID, err = s.resolveSwimlane(ctx, project.ID, input.SwimlaneID.OrElse(0), swimlaneName); err != nil {
		return placement{}, false, err
	}
	if p.categoryID, err = s.resolveCategory(ctx, project.ID, input.CategoryID.OrElse(0), categoryName); err != nil {
		return placement{}, false, err
	}

	ownerID := input.OwnerID.OrElse(t.OwnerID)
	if ownerID > 0 {
		assignable, err := s.owners.IsOwnerAssignable(ctx, project.ID, ownerID)
		if err != nil {
			return placement{}, false, err
		}
		if assignable {
			p.ownerID = ownerID
		}
	}

	if p.position, err = s.nextPosition(ctx, project.ID, p.columnID, p.swimlaneID); err != nil {
		return placement{}, false, err
	}
	return p, true, nil
}
