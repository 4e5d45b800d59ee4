package usecase

import (
	"taskboard-api/internal/task"
	pkgLog "taskboard-api/pkg/log"
)

// Policy decides whether operations that historically skipped
// authorization are guarded.
type Policy struct {
	// GuardRemove requires task access for RemoveTask.
	GuardRemove bool
	// GuardTransplant requires task access on the source task and project
	// access on the destination for MoveTaskToProject and
	// DuplicateTaskToProject.
	GuardTransplant bool
}

// DefaultPolicy guards every operation.
func DefaultPolicy() Policy {
	return Policy{GuardRemove: true, GuardTransplant: true}
}

// Deps groups the collaborators the facade delegates to.
type Deps struct {
	Gate         task.PermissionGate
	Finder       task.Finder
	Query        task.QueryEngine
	Lifecycle    task.Lifecycle
	Status       task.StatusController
	Positioner   task.Positioner
	Transplanter task.Transplanter
	Validator    task.Validator
}

type implUseCase struct {
	l            pkgLog.Logger
	gate         task.PermissionGate
	finder       task.Finder
	query        task.QueryEngine
	lifecycle    task.Lifecycle
	status       task.StatusController
	positioner   task.Positioner
	transplanter task.Transplanter
	validator    task.Validator
	baseURL      string
	policy       Policy
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance. baseURL is used to build task
// links in formatted records.
func New(l pkgLog.Logger, deps Deps, baseURL string, policy Policy) *implUseCase {
	return &implUseCase{
		l:            l,
		gate:         deps.Gate,
		finder:       deps.Finder,
		query:        deps.Query,
		lifecycle:    deps.Lifecycle,
		status:       deps.Status,
		positioner:   deps.Positioner,
		transplanter: deps.Transplanter,
		validator:    deps.Validator,
		baseURL:      baseURL,
		policy:       policy,
	}
}
