package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task/repository"
)

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	nextID     int64
	tasks      map[int64]model.Task
	projects   map[int64]model.Project
	columns    []model.Column
	swimlanes  []model.Swimlane
	categories []model.Category
	users      map[int64]model.User
	roles      map[[2]int64]string
	reorders   int
}

func newMemRepo() *memRepo {
	return &memRepo{
		nextID:   100,
		tasks:    make(map[int64]model.Task),
		projects: make(map[int64]model.Project),
		users:    make(map[int64]model.User),
		roles:    make(map[[2]int64]string),
	}
}

func (m *memRepo) CreateTask(_ context.Context, opt repository.CreateTaskOptions) (int64, error) {
	m.nextID++
	m.tasks[m.nextID] = model.Task{
		ID:                  m.nextID,
		Title:               opt.Title,
		Description:         opt.Description,
		ProjectID:           opt.ProjectID,
		ColumnID:            opt.ColumnID,
		SwimlaneID:          opt.SwimlaneID,
		CategoryID:          opt.CategoryID,
		OwnerID:             opt.OwnerID,
		CreatorID:           opt.CreatorID,
		ColorID:             opt.ColorID,
		Reference:           opt.Reference,
		Position:            opt.Position,
		Score:               opt.Score,
		Priority:            opt.Priority,
		IsActive:            model.TaskStatusOpen,
		DateDue:             opt.DateDue,
		RecurrenceStatus:    opt.RecurrenceStatus,
		RecurrenceTrigger:   opt.RecurrenceTrigger,
		RecurrenceFactor:    opt.RecurrenceFactor,
		RecurrenceTimeframe: opt.RecurrenceTimeframe,
		RecurrenceBasedate:  opt.RecurrenceBasedate,
		RecurrenceParent:    opt.RecurrenceParent,
		DateCreation:        opt.Now,
		DateModification:    opt.Now,
		DateMoved:           opt.Now,
	}
	return m.nextID, nil
}

func (m *memRepo) GetOneTask(_ context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	for _, t := range m.tasks {
		if opt.ID > 0 && t.ID != opt.ID {
			continue
		}
		if opt.ProjectID > 0 && t.ProjectID != opt.ProjectID {
			continue
		}
		if opt.Reference != "" && t.Reference != opt.Reference {
			continue
		}
		return t, nil
	}
	return model.Task{}, nil
}

func (m *memRepo) ListTasks(_ context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	out := make([]model.Task, 0)
	for _, t := range m.tasks {
		if opt.ProjectID > 0 && t.ProjectID != opt.ProjectID {
			continue
		}
		if v, ok := opt.Status.Get(); ok && t.IsActive != v {
			continue
		}
		if v, ok := opt.OwnerID.Get(); ok && t.OwnerID != v {
			continue
		}
		if v, ok := opt.ColumnID.Get(); ok && t.ColumnID != v {
			continue
		}
		if v, ok := opt.SwimlaneID.Get(); ok && t.SwimlaneID != v {
			continue
		}
		if v, ok := opt.CategoryID.Get(); ok && t.CategoryID != v {
			continue
		}
		if opt.ColorID != "" && t.ColorID != opt.ColorID {
			continue
		}
		matched := true
		for _, term := range opt.TitleTerms {
			if !strings.Contains(strings.ToLower(t.Title), strings.ToLower(term)) {
				matched = false
			}
		}
		if !matched {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memRepo) ListOverdueTasks(_ context.Context, opt repository.ListOverdueTasksOptions) ([]model.OverdueTask, error) {
	out := make([]model.OverdueTask, 0)
	for _, t := range m.tasks {
		if !t.IsOpen() || t.DateDue == nil || t.DateDue.After(opt.Now) {
			continue
		}
		if opt.ProjectID > 0 && t.ProjectID != opt.ProjectID {
			continue
		}
		out = append(out, model.OverdueTask{
			ID:            t.ID,
			Title:         t.Title,
			DateDue:       *t.DateDue,
			ProjectID:     t.ProjectID,
			ProjectName:   m.projects[t.ProjectID].Name,
			OwnerID:       t.OwnerID,
			OwnerUsername: m.users[t.OwnerID].Username,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) UpdateTask(_ context.Context, opt repository.UpdateTaskOptions) error {
	t, ok := m.tasks[opt.ID]
	if !ok {
		return nil
	}
	for k, v := range opt.Values {
		switch k {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = v.(string)
		case "color_id":
			t.ColorID = v.(string)
		case "reference":
			t.Reference = v.(string)
		case "project_id":
			t.ProjectID = v.(int64)
		case "column_id":
			t.ColumnID = v.(int64)
		case "swimlane_id":
			t.SwimlaneID = v.(int64)
		case "category_id":
			t.CategoryID = v.(int64)
		case "owner_id":
			t.OwnerID = v.(int64)
		case "position":
			t.Position = v.(int)
		case "score":
			t.Score = v.(int)
		case "priority":
			t.Priority = v.(int)
		case "is_active":
			t.IsActive = v.(int)
		case "date_due":
			t.DateDue = v.(*time.Time)
		case "date_completed":
			if v == nil {
				t.DateCompleted = nil
			} else {
				at := v.(time.Time)
				t.DateCompleted = &at
			}
		case "date_modification":
			t.DateModification = v.(time.Time)
		case "date_moved":
			t.DateMoved = v.(time.Time)
		}
	}
	m.tasks[opt.ID] = t
	return nil
}

func (m *memRepo) DeleteTask(_ context.Context, id int64) (bool, error) {
	if _, ok := m.tasks[id]; !ok {
		return false, nil
	}
	delete(m.tasks, id)
	return true, nil
}

func (m *memRepo) ReorderTasks(_ context.Context, opt repository.ReorderTasksOptions) error {
	m.reorders++
	for _, p := range opt.Placements {
		t := m.tasks[p.ID]
		t.ColumnID, t.SwimlaneID, t.Position = p.ColumnID, p.SwimlaneID, p.Position
		if p.Moved {
			t.DateMoved = opt.Now
		}
		m.tasks[p.ID] = t
	}
	return nil
}

func (m *memRepo) GetMaxPosition(_ context.Context, opt repository.GetMaxPositionOptions) (int, error) {
	highest := 0
	for _, t := range m.tasks {
		if t.IsOpen() && t.ProjectID == opt.ProjectID && t.ColumnID == opt.ColumnID && t.SwimlaneID == opt.SwimlaneID && t.Position > highest {
			highest = t.Position
		}
	}
	return highest, nil
}

func (m *memRepo) GetOneProject(_ context.Context, id int64) (model.Project, error) {
	return m.projects[id], nil
}

func (m *memRepo) GetOneColumn(_ context.Context, opt repository.GetOneColumnOptions) (model.Column, error) {
	var first model.Column
	for _, c := range m.columns {
		switch {
		case opt.ID > 0:
			if c.ID == opt.ID {
				return c, nil
			}
		case opt.Title != "":
			if c.ProjectID == opt.ProjectID && c.Title == opt.Title {
				return c, nil
			}
		case c.ProjectID == opt.ProjectID && (first.ID == 0 || c.Position < first.Position):
			first = c
		}
	}
	return first, nil
}

func (m *memRepo) GetOneSwimlane(_ context.Context, opt repository.GetOneSwimlaneOptions) (model.Swimlane, error) {
	var first model.Swimlane
	for _, s := range m.swimlanes {
		switch {
		case opt.ID > 0:
			if s.ID == opt.ID {
				return s, nil
			}
		case opt.Name != "":
			if s.ProjectID == opt.ProjectID && s.Name == opt.Name {
				return s, nil
			}
		case s.ProjectID == opt.ProjectID && s.IsActive && (first.ID == 0 || s.Position < first.Position):
			first = s
		}
	}
	return first, nil
}

func (m *memRepo) GetOneCategory(_ context.Context, opt repository.GetOneCategoryOptions) (model.Category, error) {
	for _, c := range m.categories {
		if opt.ID > 0 && c.ID == opt.ID {
			return c, nil
		}
		if opt.ID == 0 && c.ProjectID == opt.ProjectID && c.Name == opt.Name {
			return c, nil
		}
	}
	return model.Category{}, nil
}

func (m *memRepo) GetOneUser(_ context.Context, id int64) (model.User, error) {
	return m.users[id], nil
}

func (m *memRepo) GetProjectRole(_ context.Context, projectID, userID int64) (string, error) {
	return m.roles[[2]int64{projectID, userID}], nil
}

// memEvents records published events.
type memEvents struct {
	names []string
	last  repository.PublishTaskEventOptions
}

func (e *memEvents) PublishTaskEvent(_ context.Context, opt repository.PublishTaskEventOptions) error {
	e.names = append(e.names, opt.Name)
	e.last = opt
	return nil
}

// memOwners allows the listed (project, user) pairs.
type memOwners map[[2]int64]bool

func (o memOwners) IsOwnerAssignable(_ context.Context, projectID, userID int64) (bool, error) {
	return o[[2]int64{projectID, userID}], nil
}
