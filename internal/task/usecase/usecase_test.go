package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/internal/task/usecase"
	"taskboard-api/pkg/optional"
)

var (
	userScope = model.Scope{UserID: 5, Username: "alice", Role: model.RoleAppUser}
	appScope  = model.Scope{}
)

func newUseCase(f *fixture, policy usecase.Policy) task.UseCase {
	return usecase.New(&mockLogger{}, usecase.Deps{
		Gate:         f.gate,
		Finder:       f.finder,
		Query:        f.query,
		Lifecycle:    f.lifecycle,
		Status:       f.status,
		Positioner:   f.positioner,
		Transplanter: f.transplanter,
		Validator:    f.validator,
	}, "http://board.local/", policy)
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Non Assignable Owner", func(t *testing.T) {
		f := newFixture()
		f.gate.unassignable[77] = true
		uc := newUseCase(f, usecase.DefaultPolicy())

		id, err := uc.CreateTask(ctx, userScope, task.CreateTaskInput{Title: "t", ProjectID: 1, OwnerID: 77})
		if !errors.Is(err, task.ErrOwnerNotAssignable) {
			t.Fatalf("expected ErrOwnerNotAssignable, got %v", err)
		}
		if id != 0 {
			t.Errorf("expected no id, got %d", id)
		}
		if f.lifecycle.calls != 0 || f.validator.calls != 0 {
			t.Error("create and validation must not run for a non-assignable owner")
		}
	})

	t.Run("Zero Owner Skips Assignable Check", func(t *testing.T) {
		f := newFixture()
		uc := newUseCase(f, usecase.DefaultPolicy())

		if _, err := uc.CreateTask(ctx, userScope, task.CreateTaskInput{Title: "t", ProjectID: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.gate.assignableHits != 0 {
			t.Errorf("expected no assignable check, got %d", f.gate.assignableHits)
		}
	})

	t.Run("Authenticated User Is Creator", func(t *testing.T) {
		f := newFixture()
		uc := newUseCase(f, usecase.DefaultPolicy())

		if _, err := uc.CreateTask(ctx, userScope, task.CreateTaskInput{Title: "t", ProjectID: 1, CreatorID: 999}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := f.lifecycle.created.Int64(task.FieldCreatorID); got != userScope.UserID {
			t.Errorf("expected creator %d, got %d", userScope.UserID, got)
		}
	})

	t.Run("Application Scope Keeps Creator", func(t *testing.T) {
		f := newFixture()
		uc := newUseCase(f, usecase.DefaultPolicy())

		if _, err := uc.CreateTask(ctx, appScope, task.CreateTaskInput{Title: "t", ProjectID: 1, CreatorID: 999}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := f.lifecycle.created.Int64(task.FieldCreatorID); got != 999 {
			t.Errorf("expected creator 999, got %d", got)
		}
	})

	t.Run("Full Mapping With Defaults", func(t *testing.T) {
		f := newFixture()
		uc := newUseCase(f, usecase.DefaultPolicy())

		id, err := uc.CreateTask(ctx, appScope, task.CreateTaskInput{Title: "t", ProjectID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 10 {
			t.Errorf("expected id 10, got %d", id)
		}

		want := []string{
			"title", "project_id", "color_id", "column_id", "owner_id", "creator_id", "date_due",
			"description", "category_id", "score", "swimlane_id", "recurrence_status",
			"recurrence_trigger", "recurrence_factor", "recurrence_timeframe", "recurrence_basedate",
			"reference", "priority",
		}
		if got := f.lifecycle.created.Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("unexpected keys:\n got %v\nwant %v", got, want)
		}
		if s, _ := f.lifecycle.created.String(task.FieldColorID); s != "" {
			t.Errorf("expected empty color default, got %q", s)
		}
	})

	t.Run("Validation Failure", func(t *testing.T) {
		f := newFixture()
		f.validator.errs = map[string][]string{"title": {"The title is required"}}
		uc := newUseCase(f, usecase.DefaultPolicy())

		_, err := uc.CreateTask(ctx, userScope, task.CreateTaskInput{ProjectID: 1})
		var verr *task.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Errors["title"][0] != "The title is required" {
			t.Errorf("validation details lost: %v", verr.Errors)
		}
		if f.lifecycle.calls != 0 {
			t.Error("create must not run after failed validation")
		}
	})

	t.Run("Permission Denied", func(t *testing.T) {
		f := newFixture()
		f.gate.denyProjects[1] = true
		uc := newUseCase(f, usecase.DefaultPolicy())

		_, err := uc.CreateTask(ctx, userScope, task.CreateTaskInput{Title: "t", ProjectID: 1, OwnerID: 3})
		if !errors.Is(err, task.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
		if f.gate.assignableHits != 0 || f.validator.calls != 0 || f.sideEffects() != 0 {
			t.Error("nothing may run after a permission denial")
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Only Supplied Fields", func(t *testing.T) {
		f := newFixture()
		f.finder.projectIDs[3] = 1
		uc := newUseCase(f, usecase.DefaultPolicy())

		ok, err := uc.UpdateTask(ctx, userScope, task.UpdateTaskInput{ID: 3, Title: optional.Of("new")})
		if err != nil || !ok {
			t.Fatalf("expected success, got %v %v", ok, err)
		}
		if got := f.lifecycle.updated.Keys(); !reflect.DeepEqual(got, []string{"id", "title"}) {
			t.Errorf("expected [id title], got %v", got)
		}
	})

	t.Run("Supplied Zero Values Are Kept", func(t *testing.T) {
		f := newFixture()
		f.finder.projectIDs[3] = 1
		uc := newUseCase(f, usecase.DefaultPolicy())

		_, err := uc.UpdateTask(ctx, userScope, task.UpdateTaskInput{
			ID:          3,
			OwnerID:     optional.Of(int64(0)),
			Description: optional.Of(""),
			Priority:    optional.Of(0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.gate.assignableHits != 0 {
			t.Error("owner 0 must not be checked for assignability")
		}
		want := []string{"id", "owner_id", "description", "priority"}
		if got := f.lifecycle.updated.Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Unknown Task", func(t *testing.T) {
		f := newFixture()
		uc := newUseCase(f, usecase.DefaultPolicy())

		ok, err := uc.UpdateTask(ctx, userScope, task.UpdateTaskInput{ID: 404, Title: optional.Of("x")})
		if ok || !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected (false, ErrTaskNotFound), got (%v, %v)", ok, err)
		}
		if f.validator.calls != 0 || f.lifecycle.calls != 0 {
			t.Error("validator and lifecycle must not run for an unknown task")
		}
	})

	t.Run("Non Assignable Owner", func(t *testing.T) {
		f := newFixture()
		f.finder.projectIDs[3] = 1
		f.gate.unassignable[8] = true
		uc := newUseCase(f, usecase.DefaultPolicy())

		_, err := uc.UpdateTask(ctx, userScope, task.UpdateTaskInput{ID: 3, OwnerID: optional.Of(int64(8))})
		if !errors.Is(err, task.ErrOwnerNotAssignable) {
			t.Fatalf("expected ErrOwnerNotAssignable, got %v", err)
		}
		if f.lifecycle.calls != 0 {
			t.Error("update must not run")
		}
	})

	t.Run("Validation Failure", func(t *testing.T) {
		f := newFixture()
		f.finder.projectIDs[3] = 1
		f.validator.errs = map[string][]string{"date_due": {"invalid date"}}
		uc := newUseCase(f, usecase.DefaultPolicy())

		ok, err := uc.UpdateTask(ctx, userScope, task.UpdateTaskInput{ID: 3, DateDue: optional.Of("nope")})
		var verr *task.ValidationError
		if ok || !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v %v", ok, err)
		}
		if f.lifecycle.calls != 0 {
			t.Error("update must not run after failed validation")
		}
	})

	t.Run("Permission Denied", func(t *testing.T) {
		f := newFixture()
		f.finder.projectIDs[3] = 1
		f.gate.denyTasks[3] = true
		uc := newUseCase(f, usecase.DefaultPolicy())

		_, err := uc.UpdateTask(ctx, userScope, task.UpdateTaskInput{ID: 3, Title: optional.Of("x")})
		if !errors.Is(err, task.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
		if f.finder.calls != 0 || f.validator.calls != 0 || f.sideEffects() != 0 {
			t.Error("nothing may run after a permission denial")
		}
	})
}

func TestQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("GetAllTasks Defaults To Open", func(t *testing.T) {
		f := newFixture()
		f.finder.tasks[1] = model.Task{ID: 1, ProjectID: 2, IsActive: model.TaskStatusOpen}
		f.finder.tasks[2] = model.Task{ID: 2, ProjectID: 2, IsActive: model.TaskStatusClosed}
		uc := newUseCase(f, usecase.DefaultPolicy())

		records, err := uc.GetAllTasks(ctx, userScope, task.GetAllTasksInput{ProjectID: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *f.finder.allStatus != model.TaskStatusOpen {
			t.Errorf("expected open status filter, got %d", *f.finder.allStatus)
		}
		if len(records) != 1 || records[0].ID != 1 {
			t.Errorf("expected only open task 1, got %+v", records)
		}
	})

	t.Run("GetAllTasks Explicit Closed", func(t *testing.T) {
		f := newFixture()
		uc := newUseCase(f, usecase.DefaultPolicy())

		if _, err := uc.GetAllTasks(ctx, userScope, task.GetAllTasksInput{ProjectID: 2, Status: optional.Of(model.TaskStatusClosed)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *f.finder.allStatus != model.TaskStatusClosed {
			t.Errorf("expected closed status filter, got %d", *f.finder.allStatus)
		}
	})

	t.Run("GetAllTasks Unknown Status", func(t *testing.T) {
		f := newFixture()
		uc := newUseCase(f, usecase.DefaultPolicy())

		_, err := uc.GetAllTasks(ctx, userScope, task.GetAllTasksInput{ProjectID: 2, Status: optional.Of(7)})
		if !errors.Is(err, task.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("GetTask Formats Record", func(t *testing.T) {
		f := newFixture()
		f.finder.tasks[4] = model.Task{ID: 4, ProjectID: 1, ColorID: "blue"}
		uc := newUseCase(f, usecase.DefaultPolicy())

		rec, err := uc.GetTask(ctx, userScope, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.URL != "http://board.local/task/4" {
			t.Errorf("unexpected url %q", rec.URL)
		}
		if rec.Color.Name != "Blue" {
			t.Errorf("unexpected color %+v", rec.Color)
		}
	})

	t.Run("GetTask Not Found", func(t *testing.T) {
		f := newFixture()
		uc := newUseCase(f, usecase.DefaultPolicy())

		if _, err := uc.GetTask(ctx, userScope, 404); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("GetTaskByReference", func(t *testing.T) {
		f := newFixture()
		f.finder.tasks[4] = model.Task{ID: 4, ProjectID: 1, Reference: "REF-1"}
		uc := newUseCase(f, usecase.DefaultPolicy())

		rec, err := uc.GetTaskByReference(ctx, userScope, 1, "REF-1")
		if err != nil || rec.ID != 4 {
			t.Fatalf("expected task 4, got %+v %v", rec, err)
		}
	})

	t.Run("SearchTasks Restricts To Project", func(t *testing.T) {
		f := newFixture()
		f.query.plan.result = []model.Task{{ID: 1, ProjectID: 6}}
		uc := newUseCase(f, usecase.DefaultPolicy())

		records, err := uc.SearchTasks(ctx, userScope, 6, "status:open")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.query.parsed != "status:open" {
			t.Errorf("unexpected parsed query %q", f.query.parsed)
		}
		if len(f.query.plan.filters) != 1 || f.query.plan.filters[0].Value() != int64(6) {
			t.Errorf("expected a project filter for 6, got %+v", f.query.plan.filters)
		}
		if len(records) != 1 {
			t.Errorf("expected 1 record, got %d", len(records))
		}
	})

	t.Run("Overdue", func(t *testing.T) {
		f := newFixture()
		f.finder.overdue = []model.OverdueTask{{ID: 1, ProjectID: 1}, {ID: 2, ProjectID: 2}}
		f.gate.denyProjects[1] = true
		uc := newUseCase(f, usecase.DefaultPolicy())

		all, err := uc.GetOverdueTasks(ctx, userScope)
		if err != nil || len(all) != 2 {
			t.Fatalf("expected 2 overdue tasks, got %d %v", len(all), err)
		}

		byProject, err := uc.GetOverdueTasksByProject(ctx, userScope, 2)
		if err != nil || len(byProject) != 1 {
			t.Fatalf("expected 1 overdue task, got %d %v", len(byProject), err)
		}

		if _, err := uc.GetOverdueTasksByProject(ctx, userScope, 1); !errors.Is(err, task.ErrPermissionDenied) {
			t.Errorf("expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestPermissionDenial(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(uc task.UseCase) error
	}{
		{"SearchTasks", func(uc task.UseCase) error { _, err := uc.SearchTasks(ctx, userScope, 1, "x"); return err }},
		{"GetTask", func(uc task.UseCase) error { _, err := uc.GetTask(ctx, userScope, 2); return err }},
		{"GetTaskByReference", func(uc task.UseCase) error { _, err := uc.GetTaskByReference(ctx, userScope, 1, "r"); return err }},
		{"GetAllTasks", func(uc task.UseCase) error {
			_, err := uc.GetAllTasks(ctx, userScope, task.GetAllTasksInput{ProjectID: 1})
			return err
		}},
		{"GetAllTasks Unknown Status", func(uc task.UseCase) error {
			_, err := uc.GetAllTasks(ctx, userScope, task.GetAllTasksInput{ProjectID: 1, Status: optional.Of(7)})
			return err
		}},
		{"OpenTask", func(uc task.UseCase) error { _, err := uc.OpenTask(ctx, userScope, 2); return err }},
		{"CloseTask", func(uc task.UseCase) error { _, err := uc.CloseTask(ctx, userScope, 2); return err }},
		{"RemoveTask", func(uc task.UseCase) error { _, err := uc.RemoveTask(ctx, userScope, 2); return err }},
		{"MoveTaskPosition", func(uc task.UseCase) error {
			_, err := uc.MoveTaskPosition(ctx, userScope, task.MoveTaskPositionInput{ProjectID: 1, TaskID: 2, ColumnID: 1, Position: 1})
			return err
		}},
		{"MoveTaskToProject Source", func(uc task.UseCase) error {
			_, err := uc.MoveTaskToProject(ctx, userScope, task.TransplantInput{TaskID: 2, ProjectID: 3})
			return err
		}},
		{"DuplicateTaskToProject Destination", func(uc task.UseCase) error {
			_, err := uc.DuplicateTaskToProject(ctx, userScope, task.TransplantInput{TaskID: 9, ProjectID: 1})
			return err
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.gate.denyProjects[1] = true
			f.gate.denyTasks[2] = true
			uc := newUseCase(f, usecase.DefaultPolicy())

			if err := tc.call(uc); !errors.Is(err, task.ErrPermissionDenied) {
				t.Fatalf("expected ErrPermissionDenied, got %v", err)
			}
			if f.sideEffects() != 0 || f.finder.calls != 0 {
				t.Errorf("collaborators ran after denial: %d side effects, %d reads", f.sideEffects(), f.finder.calls)
			}
		})
	}
}

func TestUnguardedPolicy(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.gate.denyProjects[3] = true
	f.gate.denyTasks[2] = true
	uc := newUseCase(f, usecase.Policy{})

	ok, err := uc.RemoveTask(ctx, userScope, 2)
	if err != nil || !ok {
		t.Fatalf("unguarded remove should pass, got %v %v", ok, err)
	}
	if f.lifecycle.removed != 2 {
		t.Errorf("expected task 2 removed, got %d", f.lifecycle.removed)
	}

	moved, err := uc.MoveTaskToProject(ctx, userScope, task.TransplantInput{TaskID: 2, ProjectID: 3})
	if err != nil || !moved {
		t.Fatalf("unguarded move should pass, got %v %v", moved, err)
	}

	id, err := uc.DuplicateTaskToProject(ctx, userScope, task.TransplantInput{TaskID: 2, ProjectID: 3, OwnerID: optional.Of(int64(4))})
	if err != nil || id != 99 {
		t.Fatalf("unguarded duplicate should pass, got %d %v", id, err)
	}
	if owner, ok := f.transplanter.input.OwnerID.Get(); !ok || owner != 4 {
		t.Errorf("transplant input not forwarded: %+v", f.transplanter.input)
	}
}

func TestStatusAndPosition(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := newUseCase(f, usecase.DefaultPolicy())

	if ok, err := uc.OpenTask(ctx, userScope, 1); err != nil || !ok {
		t.Errorf("OpenTask: %v %v", ok, err)
	}
	if ok, err := uc.CloseTask(ctx, userScope, 1); err != nil || !ok {
		t.Errorf("CloseTask: %v %v", ok, err)
	}
	if ok, err := uc.MoveTaskPosition(ctx, userScope, task.MoveTaskPositionInput{ProjectID: 1, TaskID: 1, ColumnID: 2, Position: 1}); err != nil || !ok {
		t.Errorf("MoveTaskPosition: %v %v", ok, err)
	}
	if f.status.calls != 2 || f.positioner.calls != 1 {
		t.Errorf("unexpected calls: status=%d positioner=%d", f.status.calls, f.positioner.calls)
	}
}
