package jsonrpc

import (
	"context"

	"taskboard-api/internal/model"
	rpc "taskboard-api/pkg/jsonrpc"
)

type methodFunc func(ctx context.Context, sc model.Scope, req rpc.Request) (any, error)

// method is one dispatch entry. failure is the result sent when the task
// is missing or the owner cannot be assigned.
type method struct {
	fn      methodFunc
	failure any
}

func (h *handler) methodTable() map[string]method {
	return map[string]method{
		"searchTasks":              {fn: h.searchTasks},
		"getTask":                  {fn: h.getTask},
		"getTaskByReference":       {fn: h.getTaskByReference},
		"getAllTasks":              {fn: h.getAllTasks},
		"getOverdueTasks":          {fn: h.getOverdueTasks},
		"getOverdueTasksByProject": {fn: h.getOverdueTasksByProject},
		"openTask":                 {fn: h.openTask, failure: false},
		"closeTask":                {fn: h.closeTask, failure: false},
		"removeTask":               {fn: h.removeTask, failure: false},
		"moveTaskPosition":         {fn: h.moveTaskPosition, failure: false},
		"moveTaskToProject":        {fn: h.moveTaskToProject, failure: false},
		"duplicateTaskToProject":   {fn: h.duplicateTaskToProject, failure: false},
		"createTask":               {fn: h.createTask, failure: false},
		"updateTask":               {fn: h.updateTask, failure: false},
	}
}

func (h *handler) searchTasks(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p searchTasksReq
	if err := bindParams(req, searchTasksNames, &p); err != nil {
		return nil, err
	}
	records, err := h.uc.SearchTasks(ctx, sc, p.ProjectID, p.Query)
	if err != nil {
		return nil, err
	}
	return newTaskListResp(records), nil
}

func (h *handler) getTask(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p taskIDReq
	if err := bindParams(req, taskIDNames, &p); err != nil {
		return nil, err
	}
	record, err := h.uc.GetTask(ctx, sc, p.TaskID)
	if err != nil {
		return nil, err
	}
	return newTaskResp(record), nil
}

func (h *handler) getTaskByReference(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p getTaskByReferenceReq
	if err := bindParams(req, getTaskByReferenceNames, &p); err != nil {
		return nil, err
	}
	record, err := h.uc.GetTaskByReference(ctx, sc, p.ProjectID, p.Reference)
	if err != nil {
		return nil, err
	}
	return newTaskResp(record), nil
}

func (h *handler) getAllTasks(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p getAllTasksReq
	if err := bindParams(req, getAllTasksNames, &p); err != nil {
		return nil, err
	}
	records, err := h.uc.GetAllTasks(ctx, sc, p.toInput())
	if err != nil {
		return nil, err
	}
	return newTaskListResp(records), nil
}

func (h *handler) getOverdueTasks(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	if err := bindParams(req, nil, &struct{}{}); err != nil {
		return nil, err
	}
	tasks, err := h.uc.GetOverdueTasks(ctx, sc)
	if err != nil {
		return nil, err
	}
	return newOverdueListResp(tasks), nil
}

func (h *handler) getOverdueTasksByProject(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p projectIDReq
	if err := bindParams(req, projectIDNames, &p); err != nil {
		return nil, err
	}
	tasks, err := h.uc.GetOverdueTasksByProject(ctx, sc, p.ProjectID)
	if err != nil {
		return nil, err
	}
	return newOverdueListResp(tasks), nil
}

func (h *handler) openTask(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p taskIDReq
	if err := bindParams(req, taskIDNames, &p); err != nil {
		return nil, err
	}
	return h.uc.OpenTask(ctx, sc, p.TaskID)
}

func (h *handler) closeTask(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p taskIDReq
	if err := bindParams(req, taskIDNames, &p); err != nil {
		return nil, err
	}
	return h.uc.CloseTask(ctx, sc, p.TaskID)
}

func (h *handler) removeTask(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p taskIDReq
	if err := bindParams(req, taskIDNames, &p); err != nil {
		return nil, err
	}
	return h.uc.RemoveTask(ctx, sc, p.TaskID)
}

func (h *handler) moveTaskPosition(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p moveTaskPositionReq
	if err := bindParams(req, moveTaskPositionNames, &p); err != nil {
		return nil, err
	}
	return h.uc.MoveTaskPosition(ctx, sc, p.toInput())
}

func (h *handler) moveTaskToProject(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p transplantReq
	if err := bindParams(req, transplantNames, &p); err != nil {
		return nil, err
	}
	return h.uc.MoveTaskToProject(ctx, sc, p.toInput())
}

func (h *handler) duplicateTaskToProject(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p transplantReq
	if err := bindParams(req, transplantNames, &p); err != nil {
		return nil, err
	}
	id, err := h.uc.DuplicateTaskToProject(ctx, sc, p.toInput())
	if err != nil {
		return nil, err
	}
	return idOrFalse(id), nil
}

func (h *handler) createTask(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p createTaskReq
	if err := bindParams(req, createTaskNames, &p); err != nil {
		return nil, err
	}
	id, err := h.uc.CreateTask(ctx, sc, p.toInput())
	if err != nil {
		return nil, err
	}
	return idOrFalse(id), nil
}

func (h *handler) updateTask(ctx context.Context, sc model.Scope, req rpc.Request) (any, error) {
	var p updateTaskReq
	if err := bindParams(req, updateTaskNames, &p); err != nil {
		return nil, err
	}
	return h.uc.UpdateTask(ctx, sc, p.toInput())
}

func idOrFalse(id int64) any {
	if id == 0 {
		return false
	}
	return id
}
