package usecase

import (
	"context"

	"taskboard-api/internal/model"
)

func (uc *implUseCase) OpenTask(ctx context.Context, sc model.Scope, taskID int64) (bool, error) {
	if err := uc.checkTaskPermission(ctx, sc, taskID); err != nil {
		return false, err
	}

	ok, err := uc.status.Open(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.OpenTask Open: %v", err)
		return false, err
	}
	return ok, nil
}

func (uc *implUseCase) CloseTask(ctx context.Context, sc model.Scope, taskID int64) (bool, error) {
	if err := uc.checkTaskPermission(ctx, sc, taskID); err != nil {
		return false, err
	}

	ok, err := uc.status.Close(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CloseTask Close: %v", err)
		return false, err
	}
	return ok, nil
}

// RemoveTask deletes a task. Task access is only required when the policy
// guards removal.
func (uc *implUseCase) RemoveTask(ctx context.Context, sc model.Scope, taskID int64) (bool, error) {
	if uc.policy.GuardRemove {
		if err := uc.checkTaskPermission(ctx, sc, taskID); err != nil {
			return false, err
		}
	}

	ok, err := uc.lifecycle.Remove(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RemoveTask Remove: %v", err)
		return false, err
	}
	return ok, nil
}
