package task

import (
	"context"

	"taskboard-api/internal/model"
)

// PermissionGate answers access questions for the acting scope.
type PermissionGate interface {
	HasProjectAccess(ctx context.Context, sc model.Scope, projectID int64) (bool, error)
	HasTaskAccess(ctx context.Context, sc model.Scope, taskID int64) (bool, error)
	IsOwnerAssignable(ctx context.Context, projectID, userID int64) (bool, error)
}

// Finder performs read-only task lookups. Single-task lookups return
// ErrTaskNotFound when nothing matches.
type Finder interface {
	GetByID(ctx context.Context, taskID int64) (model.Task, error)
	GetByReference(ctx context.Context, projectID int64, reference string) (model.Task, error)
	GetAll(ctx context.Context, projectID int64, status int) ([]model.Task, error)
	GetOverdue(ctx context.Context) ([]model.OverdueTask, error)
	GetOverdueByProject(ctx context.Context, projectID int64) ([]model.OverdueTask, error)
	// GetProjectID returns 0 when the task does not exist.
	GetProjectID(ctx context.Context, taskID int64) (int64, error)
}

// QueryFilter narrows a QueryPlan.
type QueryFilter interface {
	Attribute() string
	Value() any
}

// QueryPlan is a parsed search that can be narrowed and executed.
type QueryPlan interface {
	WithFilter(f QueryFilter) QueryPlan
	Execute(ctx context.Context) ([]model.Task, error)
}

// QueryEngine turns a textual query into a QueryPlan.
type QueryEngine interface {
	Parse(text string) (QueryPlan, error)
}

// Lifecycle creates, updates and removes tasks.
type Lifecycle interface {
	Create(ctx context.Context, f *Fields) (int64, error)
	Update(ctx context.Context, f *Fields) (bool, error)
	Remove(ctx context.Context, taskID int64) (bool, error)
}

// StatusController opens and closes tasks. Both are idempotent.
type StatusController interface {
	Open(ctx context.Context, taskID int64) (bool, error)
	Close(ctx context.Context, taskID int64) (bool, error)
}

// Positioner reorders a task inside a column and swimlane.
type Positioner interface {
	MovePosition(ctx context.Context, projectID, taskID, columnID int64, position int, swimlaneID int64) (bool, error)
}

// Transplanter moves or copies a task into another project.
type Transplanter interface {
	MoveToProject(ctx context.Context, input TransplantInput) (bool, error)
	DuplicateToProject(ctx context.Context, input TransplantInput) (int64, error)
}

// Validator checks field mappings before they are written. The returned
// map holds messages per field name and is empty when valid.
type Validator interface {
	ValidateCreation(f *Fields) (bool, map[string][]string)
	ValidateAPIModification(f *Fields) (bool, map[string][]string)
}

// ProjectFilter restricts a query to one project.
type ProjectFilter struct {
	ProjectID int64
}

const FilterAttributeProject = "project_id"

func (f ProjectFilter) Attribute() string { return FilterAttributeProject }
func (f ProjectFilter) Value() any        { return f.ProjectID }
