package usecase

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
)

// SearchTasks parses query and runs it inside one project.
func (uc *implUseCase) SearchTasks(ctx context.Context, sc model.Scope, projectID int64, query string) ([]task.Record, error) {
	if err := uc.checkProjectPermission(ctx, sc, projectID); err != nil {
		return nil, err
	}

	plan, err := uc.query.Parse(query)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SearchTasks Parse: %v", err)
		return nil, err
	}

	tasks, err := plan.WithFilter(task.ProjectFilter{ProjectID: projectID}).Execute(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SearchTasks Execute: %v", err)
		return nil, err
	}
	return uc.formatTasks(tasks), nil
}

// GetTask returns one task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) GetTask(ctx context.Context, sc model.Scope, taskID int64) (task.Record, error) {
	if err := uc.checkTaskPermission(ctx, sc, taskID); err != nil {
		return task.Record{}, err
	}

	t, err := uc.finder.GetByID(ctx, taskID)
	if err != nil {
		return task.Record{}, err
	}
	return uc.formatTask(t), nil
}

// GetTaskByReference looks a task up by its project-scoped reference.
func (uc *implUseCase) GetTaskByReference(ctx context.Context, sc model.Scope, projectID int64, reference string) (task.Record, error) {
	if err := uc.checkProjectPermission(ctx, sc, projectID); err != nil {
		return task.Record{}, err
	}

	t, err := uc.finder.GetByReference(ctx, projectID, reference)
	if err != nil {
		return task.Record{}, err
	}
	return uc.formatTask(t), nil
}

// GetAllTasks lists a project's tasks with the given status, open by default.
func (uc *implUseCase) GetAllTasks(ctx context.Context, sc model.Scope, input task.GetAllTasksInput) ([]task.Record, error) {
	if err := uc.checkProjectPermission(ctx, sc, input.ProjectID); err != nil {
		return nil, err
	}

	status := input.Status.OrElse(model.TaskStatusOpen)
	switch status {
	case model.TaskStatusOpen, model.TaskStatusClosed, model.TaskStatusAll:
	default:
		return nil, task.ErrInvalidInput
	}

	tasks, err := uc.finder.GetAll(ctx, input.ProjectID, status)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetAllTasks GetAll: %v", err)
		return nil, err
	}
	return uc.formatTasks(tasks), nil
}

// GetOverdueTasks lists overdue tasks across all projects. Callers are
// already scoped by the gateway.
func (uc *implUseCase) GetOverdueTasks(ctx context.Context, sc model.Scope) ([]model.OverdueTask, error) {
	tasks, err := uc.finder.GetOverdue(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetOverdueTasks GetOverdue: %v", err)
		return nil, err
	}
	return tasks, nil
}

func (uc *implUseCase) GetOverdueTasksByProject(ctx context.Context, sc model.Scope, projectID int64) ([]model.OverdueTask, error) {
	if err := uc.checkProjectPermission(ctx, sc, projectID); err != nil {
		return nil, err
	}

	tasks, err := uc.finder.GetOverdueByProject(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetOverdueTasksByProject GetOverdueByProject: %v", err)
		return nil, err
	}
	return tasks, nil
}
