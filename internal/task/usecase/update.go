package usecase

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
)

// UpdateTask applies a partial update. Fields the caller did not supply are
// left out of the mapping and therefore untouched.
func (uc *implUseCase) UpdateTask(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (bool, error) {
	if err := uc.checkTaskPermission(ctx, sc, input.ID); err != nil {
		return false, err
	}

	projectID, err := uc.finder.GetProjectID(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask GetProjectID: %v", err)
		return false, err
	}
	if projectID == 0 {
		return false, task.ErrTaskNotFound
	}

	if ownerID, ok := input.OwnerID.Get(); ok && ownerID != 0 {
		if err := uc.checkOwnerAssignable(ctx, projectID, ownerID); err != nil {
			return false, err
		}
	}

	f := task.NewFields().Set(task.FieldID, input.ID)
	setIfPresent(f, task.FieldTitle, input.Title)
	setIfPresent(f, task.FieldColorID, input.ColorID)
	setIfPresent(f, task.FieldOwnerID, input.OwnerID)
	setIfPresent(f, task.FieldDateDue, input.DateDue)
	setIfPresent(f, task.FieldDescription, input.Description)
	setIfPresent(f, task.FieldCategoryID, input.CategoryID)
	setIfPresent(f, task.FieldScore, input.Score)
	setIfPresent(f, task.FieldRecurrenceStatus, input.RecurrenceStatus)
	setIfPresent(f, task.FieldRecurrenceTrigger, input.RecurrenceTrigger)
	setIfPresent(f, task.FieldRecurrenceFactor, input.RecurrenceFactor)
	setIfPresent(f, task.FieldRecurrenceTimeframe, input.RecurrenceTimeframe)
	setIfPresent(f, task.FieldRecurrenceBasedate, input.RecurrenceBasedate)
	setIfPresent(f, task.FieldReference, input.Reference)
	setIfPresent(f, task.FieldPriority, input.Priority)

	if ok, errs := uc.validator.ValidateAPIModification(f); !ok {
		return false, &task.ValidationError{Errors: errs}
	}

	ok, err := uc.lifecycle.Update(ctx, f)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask Update: %v", err)
		return false, err
	}
	return ok, nil
}
