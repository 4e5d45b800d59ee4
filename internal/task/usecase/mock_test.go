package usecase_test

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockGate struct {
	denyProjects   map[int64]bool
	denyTasks      map[int64]bool
	unassignable   map[int64]bool
	assignableHits int
}

func (m *mockGate) HasProjectAccess(ctx context.Context, sc model.Scope, projectID int64) (bool, error) {
	return !m.denyProjects[projectID], nil
}

func (m *mockGate) HasTaskAccess(ctx context.Context, sc model.Scope, taskID int64) (bool, error) {
	return !m.denyTasks[taskID], nil
}

func (m *mockGate) IsOwnerAssignable(ctx context.Context, projectID, userID int64) (bool, error) {
	m.assignableHits++
	return !m.unassignable[userID], nil
}

type mockFinder struct {
	tasks      map[int64]model.Task
	projectIDs map[int64]int64
	allStatus  *int
	overdue    []model.OverdueTask
	calls      int
}

func (m *mockFinder) GetByID(ctx context.Context, taskID int64) (model.Task, error) {
	m.calls++
	t, ok := m.tasks[taskID]
	if !ok {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (m *mockFinder) GetByReference(ctx context.Context, projectID int64, reference string) (model.Task, error) {
	m.calls++
	for _, t := range m.tasks {
		if t.ProjectID == projectID && t.Reference == reference {
			return t, nil
		}
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (m *mockFinder) GetAll(ctx context.Context, projectID int64, status int) ([]model.Task, error) {
	m.calls++
	m.allStatus = &status
	var out []model.Task
	for _, t := range m.tasks {
		if t.ProjectID == projectID && (status == model.TaskStatusAll || t.IsActive == status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockFinder) GetOverdue(ctx context.Context) ([]model.OverdueTask, error) {
	m.calls++
	return m.overdue, nil
}

func (m *mockFinder) GetOverdueByProject(ctx context.Context, projectID int64) ([]model.OverdueTask, error) {
	m.calls++
	var out []model.OverdueTask
	for _, t := range m.overdue {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockFinder) GetProjectID(ctx context.Context, taskID int64) (int64, error) {
	m.calls++
	return m.projectIDs[taskID], nil
}

type mockPlan struct {
	filters []task.QueryFilter
	result  []model.Task
}

func (p *mockPlan) WithFilter(f task.QueryFilter) task.QueryPlan {
	p.filters = append(p.filters, f)
	return p
}

func (p *mockPlan) Execute(ctx context.Context) ([]model.Task, error) {
	return p.result, nil
}

type mockQuery struct {
	parsed string
	plan   *mockPlan
}

func (m *mockQuery) Parse(text string) (task.QueryPlan, error) {
	m.parsed = text
	return m.plan, nil
}

type mockLifecycle struct {
	created  *task.Fields
	updated  *task.Fields
	removed  int64
	createID int64
	calls    int
}

func (m *mockLifecycle) Create(ctx context.Context, f *task.Fields) (int64, error) {
	m.calls++
	m.created = f
	return m.createID, nil
}

func (m *mockLifecycle) Update(ctx context.Context, f *task.Fields) (bool, error) {
	m.calls++
	m.updated = f
	return true, nil
}

func (m *mockLifecycle) Remove(ctx context.Context, taskID int64) (bool, error) {
	m.calls++
	m.removed = taskID
	return true, nil
}

type mockStatus struct{ calls int }

func (m *mockStatus) Open(ctx context.Context, taskID int64) (bool, error) {
	m.calls++
	return true, nil
}

func (m *mockStatus) Close(ctx context.Context, taskID int64) (bool, error) {
	m.calls++
	return true, nil
}

type mockPositioner struct{ calls int }

func (m *mockPositioner) MovePosition(ctx context.Context, projectID, taskID, columnID int64, position int, swimlaneID int64) (bool, error) {
	m.calls++
	return true, nil
}

type mockTransplanter struct {
	calls int
	input task.TransplantInput
}

func (m *mockTransplanter) MoveToProject(ctx context.Context, input task.TransplantInput) (bool, error) {
	m.calls++
	m.input = input
	return true, nil
}

func (m *mockTransplanter) DuplicateToProject(ctx context.Context, input task.TransplantInput) (int64, error) {
	m.calls++
	m.input = input
	return 99, nil
}

type mockValidator struct {
	errs  map[string][]string
	calls int
	seen  *task.Fields
}

func (m *mockValidator) ValidateCreation(f *task.Fields) (bool, map[string][]string) {
	m.calls++
	m.seen = f
	return len(m.errs) == 0, m.errs
}

func (m *mockValidator) ValidateAPIModification(f *task.Fields) (bool, map[string][]string) {
	m.calls++
	m.seen = f
	return len(m.errs) == 0, m.errs
}

// fixture bundles every mock so tests can assert which collaborators ran.
type fixture struct {
	gate         *mockGate
	finder       *mockFinder
	query        *mockQuery
	lifecycle    *mockLifecycle
	status       *mockStatus
	positioner   *mockPositioner
	transplanter *mockTransplanter
	validator    *mockValidator
}

func newFixture() *fixture {
	return &fixture{
		gate:         &mockGate{denyProjects: map[int64]bool{}, denyTasks: map[int64]bool{}, unassignable: map[int64]bool{}},
		finder:       &mockFinder{tasks: map[int64]model.Task{}, projectIDs: map[int64]int64{}},
		query:        &mockQuery{plan: &mockPlan{}},
		lifecycle:    &mockLifecycle{createID: 10},
		status:       &mockStatus{},
		positioner:   &mockPositioner{},
		transplanter: &mockTransplanter{},
		validator:    &mockValidator{},
	}
}

// sideEffects counts calls into collaborators that may write.
func (f *fixture) sideEffects() int {
	return f.lifecycle.calls + f.status.calls + f.positioner.calls + f.transplanter.calls
}
