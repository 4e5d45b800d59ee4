package repository

import (
	"context"

	"taskboard-api/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	BoardRepository
	MembershipRepository
}

// TaskRepository defines data access for tasks. Single-row getters return
// a zero value (ID == 0) when nothing matches.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (int64, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	ListOverdueTasks(ctx context.Context, opt ListOverdueTasksOptions) ([]model.OverdueTask, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) error
	DeleteTask(ctx context.Context, id int64) (bool, error)
	// ReorderTasks writes placement changes for several tasks atomically.
	ReorderTasks(ctx context.Context, opt ReorderTasksOptions) error
	GetMaxPosition(ctx context.Context, opt GetMaxPositionOptions) (int, error)
}

// BoardRepository reads the project structure tasks are placed on.
type BoardRepository interface {
	GetOneProject(ctx context.Context, id int64) (model.Project, error)
	GetOneColumn(ctx context.Context, opt GetOneColumnOptions) (model.Column, error)
	GetOneSwimlane(ctx context.Context, opt GetOneSwimlaneOptions) (model.Swimlane, error)
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (model.Category, error)
}

// MembershipRepository reads users and their project roles.
type MembershipRepository interface {
	GetOneUser(ctx context.Context, id int64) (model.User, error)
	// GetProjectRole returns "" when the user has no role in the project.
	GetProjectRole(ctx context.Context, projectID, userID int64) (string, error)
}

// EventRepository publishes task events to subscribers.
type EventRepository interface {
	PublishTaskEvent(ctx context.Context, opt PublishTaskEventOptions) error
}
