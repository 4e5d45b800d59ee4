package usecase

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
)

// MoveTaskPosition places a task at position inside a column and swimlane.
func (uc *implUseCase) MoveTaskPosition(ctx context.Context, sc model.Scope, input task.MoveTaskPositionInput) (bool, error) {
	if err := uc.checkProjectPermission(ctx, sc, input.ProjectID); err != nil {
		return false, err
	}

	ok, err := uc.positioner.MovePosition(ctx, input.ProjectID, input.TaskID, input.ColumnID, input.Position, input.SwimlaneID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MoveTaskPosition MovePosition: %v", err)
		return false, err
	}
	return ok, nil
}

func (uc *implUseCase) MoveTaskToProject(ctx context.Context, sc model.Scope, input task.TransplantInput) (bool, error) {
	if err := uc.checkTransplantPermission(ctx, sc, input); err != nil {
		return false, err
	}

	ok, err := uc.transplanter.MoveToProject(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MoveTaskToProject MoveToProject: %v", err)
		return false, err
	}
	return ok, nil
}

// DuplicateTaskToProject copies a task and returns the new task id, or 0
// when the copy was refused.
func (uc *implUseCase) DuplicateTaskToProject(ctx context.Context, sc model.Scope, input task.TransplantInput) (int64, error) {
	if err := uc.checkTransplantPermission(ctx, sc, input); err != nil {
		return 0, err
	}

	id, err := uc.transplanter.DuplicateToProject(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DuplicateTaskToProject DuplicateToProject: %v", err)
		return 0, err
	}
	return id, nil
}

func (uc *implUseCase) checkTransplantPermission(ctx context.Context, sc model.Scope, input task.TransplantInput) error {
	if !uc.policy.GuardTransplant {
		return nil
	}
	if err := uc.checkTaskPermission(ctx, sc, input.TaskID); err != nil {
		return err
	}
	return uc.checkProjectPermission(ctx, sc, input.ProjectID)
}
