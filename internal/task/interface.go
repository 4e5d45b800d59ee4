package task

import (
	"context"

	"taskboard-api/internal/model"
)

// UseCase is the task API facade. Every method takes the acting scope
// explicitly; methods guarded by project or task access return
// ErrPermissionDenied before any collaborator with side effects runs.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Queries
	SearchTasks(ctx context.Context, sc model.Scope, projectID int64, query string) ([]Record, error)
	GetTask(ctx context.Context, sc model.Scope, taskID int64) (Record, error)
	GetTaskByReference(ctx context.Context, sc model.Scope, projectID int64, reference string) (Record, error)
	GetAllTasks(ctx context.Context, sc model.Scope, input GetAllTasksInput) ([]Record, error)
	GetOverdueTasks(ctx context.Context, sc model.Scope) ([]model.OverdueTask, error)
	GetOverdueTasksByProject(ctx context.Context, sc model.Scope, projectID int64) ([]model.OverdueTask, error)

	// Status
	OpenTask(ctx context.Context, sc model.Scope, taskID int64) (bool, error)
	CloseTask(ctx context.Context, sc model.Scope, taskID int64) (bool, error)

	// Placement
	MoveTaskPosition(ctx context.Context, sc model.Scope, input MoveTaskPositionInput) (bool, error)
	MoveTaskToProject(ctx context.Context, sc model.Scope, input TransplantInput) (bool, error)
	DuplicateTaskToProject(ctx context.Context, sc model.Scope, input TransplantInput) (int64, error)

	// Lifecycle
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (int64, error)
	UpdateTask(ctx context.Context, sc model.Scope, input UpdateTaskInput) (bool, error)
	RemoveTask(ctx context.Context, sc model.Scope, taskID int64) (bool, error)
}
