package service

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
	"taskboard-api/pkg/optional"
)

func (s *implService) GetByID(ctx context.Context, taskID int64) (model.Task, error) {
	t, err := s.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: taskID})
	if err != nil {
		return model.Task{}, err
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (s *implService) GetByReference(ctx context.Context, projectID int64, reference string) (model.Task, error) {
	if reference == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := s.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ProjectID: projectID, Reference: reference})
	if err != nil {
		return model.Task{}, err
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// GetAll lists a project's tasks. model.TaskStatusAll disables the status
// filter.
func (s *implService) GetAll(ctx context.Context, projectID int64, status int) ([]model.Task, error) {
	opt := repository.ListTasksOptions{ProjectID: projectID}
	if status != model.TaskStatusAll {
		opt.Status = optional.Of(status)
	}
	return s.repo.ListTasks(ctx, opt)
}

func (s *implService) GetOverdue(ctx context.Context) ([]model.OverdueTask, error) {
	return s.repo.ListOverdueTasks(ctx, repository.ListOverdueTasksOptions{Now: s.now()})
}

func (s *implService) GetOverdueByProject(ctx context.Context, projectID int64) ([]model.OverdueTask, error) {
	return s.repo.ListOverdueTasks(ctx, repository.ListOverdueTasksOptions{ProjectID: projectID, Now: s.now()})
}

func (s *implService) GetProjectID(ctx context.Context, taskID int64) (int64, error) {
	t, err := s.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: taskID})
	if err != nil {
		return 0, err
	}
	return t.ProjectID, nil
}
