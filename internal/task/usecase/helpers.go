package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/pkg/optional"
)

func (uc *implUseCase) checkProjectPermission(ctx context.Context, sc model.Scope, projectID int64) error {
	ok, err := uc.gate.HasProjectAccess(ctx, sc, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkProjectPermission HasProjectAccess: %v", err)
		return err
	}
	if !ok {
		uc.l.Warnf(ctx, "uc.checkProjectPermission: user %d denied on project %d", sc.UserID, projectID)
		return task.ErrPermissionDenied
	}
	return nil
}

func (uc *implUseCase) checkTaskPermission(ctx context.Context, sc model.Scope, taskID int64) error {
	ok, err := uc.gate.HasTaskAccess(ctx, sc, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkTaskPermission HasTaskAccess: %v", err)
		return err
	}
	if !ok {
		uc.l.Warnf(ctx, "uc.checkTaskPermission: user %d denied on task %d", sc.UserID, taskID)
		return task.ErrPermissionDenied
	}
	return nil
}

func (uc *implUseCase) checkOwnerAssignable(ctx context.Context, projectID, ownerID int64) error {
	ok, err := uc.gate.IsOwnerAssignable(ctx, projectID, ownerID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkOwnerAssignable IsOwnerAssignable: %v", err)
		return err
	}
	if !ok {
		return task.ErrOwnerNotAssignable
	}
	return nil
}

func (uc *implUseCase) formatTask(t model.Task) task.Record {
	return task.Record{
		Task:  t,
		URL:   fmt.Sprintf("%s/task/%d", strings.TrimRight(uc.baseURL, "/"), t.ID),
		Color: model.ColorByID(t.ColorID),
	}
}

func (uc *implUseCase) formatTasks(tasks []model.Task) []task.Record {
	records := make([]task.Record, len(tasks))
	for i, t := range tasks {
		records[i] = uc.formatTask(t)
	}
	return records
}

// setIfPresent copies v into f only when the caller supplied it.
func setIfPresent[T any](f *task.Fields, name string, v optional.Value[T]) {
	if x, ok := v.Get(); ok {
		f.Set(name, x)
	}
}
