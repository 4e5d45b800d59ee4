package service

import (
	"context"
	"fmt"

	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
)

// resolveColumn returns columnID when it belongs to the project. A zero
// id is looked up by title, then falls back to the first column.
func (s *implService) resolveColumn(ctx context.Context, projectID, columnID int64, title string) (int64, error) {
	if columnID > 0 {
		c, err := s.repo.GetOneColumn(ctx, repository.GetOneColumnOptions{ID: columnID})
		if err != nil {
			return 0, err
		}
		if c.ID == 0 || c.ProjectID != projectID {
			return 0, fmt.Errorf("%w: column %d is not in project %d", task.ErrInvalidInput, columnID, projectID)
		}
		return c.ID, nil
	}

	if title != "" {
		c, err := s.repo.GetOneColumn(ctx, repository.GetOneColumnOptions{ProjectID: projectID, Title: title})
		if err != nil {
			return 0, err
		}
		if c.ID > 0 {
			return c.ID, nil
		}
	}

	c, err := s.repo.GetOneColumn(ctx, repository.GetOneColumnOptions{ProjectID: projectID})
	if err != nil {
		return 0, err
	}
	if c.ID == 0 {
		return 0, fmt.Errorf("%w: project %d has no column", task.ErrInvalidInput, projectID)
	}
	return c.ID, nil
}

// resolveSwimlane mirrors resolveColumn for swimlanes.
func (s *implService) resolveSwimlane(ctx context.Context, projectID, swimlaneID int64, name string) (int64, error) {
	if swimlaneID > 0 {
		sl, err := s.repo.GetOneSwimlane(ctx, repository.GetOneSwimlaneOptions{ID: swimlaneID})
		if err != nil {
			return 0, err
		}
		if sl.ID == 0 || sl.ProjectID != projectID {
			return 0, fmt.Errorf("%w: swimlane %d is not in project %d", task.ErrInvalidInput, swimlaneID, projectID)
		}
		return sl.ID, nil
	}

	if name != "" {
		sl, err := s.repo.GetOneSwimlane(ctx, repository.GetOneSwimlaneOptions{ProjectID: projectID, Name: name})
		if err != nil {
			return 0, err
		}
		if sl.ID > 0 {
			return sl.ID, nil
		}
	}

	sl, err := s.repo.GetOneSwimlane(ctx, repository.GetOneSwimlaneOptions{ProjectID: projectID})
	if err != nil {
		return 0, err
	}
	if sl.ID == 0 {
		return 0, fmt.Errorf("%w: project %d has no active swimlane", task.ErrInvalidInput, projectID)
	}
	return sl.ID, nil
}

// resolveCategory returns categoryID when it belongs to the project, else
// the project's category with the given name, else 0.
func (s *implService) resolveCategory(ctx context.Context, projectID, categoryID int64, name string) (int64, error) {
	if categoryID > 0 {
		c, err := s.repo.GetOneCategory(ctx, repository.GetOneCategoryOptions{ID: categoryID})
		if err != nil {
			return 0, err
		}
		if c.ID == 0 || c.ProjectID != projectID {
			return 0, nil
		}
		return c.ID, nil
	}
	if name == "" {
		return 0, nil
	}
	c, err := s.repo.GetOneCategory(ctx, repository.GetOneCategoryOptions{ProjectID: projectID, Name: name})
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}
