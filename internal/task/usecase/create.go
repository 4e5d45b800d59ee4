package usecase

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
)

// CreateTask validates and stores a new task and returns its id.
// An authenticated user is always recorded as the creator.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (int64, error) {
	if err := uc.checkProjectPermission(ctx, sc, input.ProjectID); err != nil {
		return 0, err
	}

	if input.OwnerID != 0 {
		if err := uc.checkOwnerAssignable(ctx, input.ProjectID, input.OwnerID); err != nil {
			return 0, err
		}
	}

	creatorID := input.CreatorID
	if sc.IsUser() {
		creatorID = sc.UserID
	}

	f := task.NewFields().
		Set(task.FieldTitle, input.Title).
		Set(task.FieldProjectID, input.ProjectID).
		Set(task.FieldColorID, input.ColorID).
		Set(task.FieldColumnID, input.ColumnID).
		Set(task.FieldOwnerID, input.OwnerID).
		Set(task.FieldCreatorID, creatorID).
		Set(task.FieldDateDue, input.DateDue).
		Set(task.FieldDescription, input.Description).
		Set(task.FieldCategoryID, input.CategoryID).
		Set(task.FieldScore, input.Score).
		Set(task.FieldSwimlaneID, input.SwimlaneID).
		Set(task.FieldRecurrenceStatus, input.RecurrenceStatus).
		Set(task.FieldRecurrenceTrigger, input.RecurrenceTrigger).
		Set(task.FieldRecurrenceFactor, input.RecurrenceFactor).
		Set(task.FieldRecurrenceTimeframe, input.RecurrenceTimeframe).
		Set(task.FieldRecurrenceBasedate, input.RecurrenceBasedate).
		Set(task.FieldReference, input.Reference).
		Set(task.FieldPriority, input.Priority)

	if ok, errs := uc.validator.ValidateCreation(f); !ok {
		return 0, &task.ValidationError{Errors: errs}
	}

	id, err := uc.lifecycle.Create(ctx, f)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask Create: %v", err)
		return 0, err
	}
	return id, nil
}
