package jsonrpc

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
	"taskboard-api/internal/model"
	rpc "taskboard-api/pkg/jsonrpc"
)

// Handle godoc
// @Summary     Task JSON-RPC endpoint
// @Description Accepts a JSON-RPC 2.0 call or batch. Methods: searchTasks, getTask, getTaskByReference,
// @Description getAllTasks, getOverdueTasks, getOverdueTasksByProject, openTask, closeTask, removeTask,
// @Description moveTaskPosition, moveTaskToProject, duplicateTaskToProject, createTask, updateTask.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Security    BasicAuth
// @Param       body body     rpcRequestDoc true "JSON-RPC request or batch"
// @Success     200  {object} rpcResponseDoc
// @Success     204  "Only notifications were sent"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /jsonrpc [POST]
func (h *handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		h.l.Errorf(ctx, "jsonrpc.Handle: no scope on context")
		c.JSON(http.StatusOK, rpc.NewErrorResponse(nil, rpc.NewError(rpc.CodeInternalError, "Internal error", nil)))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Warnf(ctx, "jsonrpc.Handle read body: %v", err)
		c.JSON(http.StatusOK, rpc.NewErrorResponse(nil, rpc.NewError(rpc.CodeParseError, "Parse error", nil)))
		return
	}

	reqs, batch, err := rpc.Decode(body)
	switch {
	case errors.Is(err, rpc.ErrEmptyBatch):
		c.JSON(http.StatusOK, rpc.NewErrorResponse(nil, rpc.NewError(rpc.CodeInvalidRequest, "Invalid Request", nil)))
		return
	case err != nil:
		c.JSON(http.StatusOK, rpc.NewErrorResponse(nil, rpc.NewError(rpc.CodeParseError, "Parse error", nil)))
		return
	case len(reqs) > MaxBatchSize:
		c.JSON(http.StatusOK, rpc.NewErrorResponse(nil, rpc.NewError(rpc.CodeInvalidRequest, "Invalid Request", "batch too large")))
		return
	}

	responses := make([]rpc.Response, 0, len(reqs))
	for _, req := range reqs {
		if resp, reply := h.call(ctx, sc, req); reply {
			responses = append(responses, resp)
		}
	}

	switch {
	case len(responses) == 0:
		c.Status(http.StatusNoContent)
	case batch:
		c.JSON(http.StatusOK, responses)
	default:
		c.JSON(http.StatusOK, responses[0])
	}
}

// call runs one request. reply is false for well-formed notifications.
func (h *handler) call(ctx context.Context, sc model.Scope, req rpc.Request) (resp rpc.Response, reply bool) {
	if rpcErr := req.Validate(); rpcErr != nil {
		return rpc.NewErrorResponse(req.ID, rpcErr), true
	}

	m, ok := h.methods[req.Method]
	if !ok {
		return rpc.NewErrorResponse(req.ID, rpc.NewError(rpc.CodeMethodNotFound, "Method not found", req.Method)), !req.IsNotification()
	}

	result, err := m.fn(ctx, sc, req)
	if err != nil {
		var rpcErr *rpc.Error
		if result, rpcErr = h.mapError(ctx, req.Method, m, err); rpcErr != nil {
			return rpc.NewErrorResponse(req.ID, rpcErr), !req.IsNotification()
		}
	}
	return rpc.NewResult(req.ID, result), !req.IsNotification()
}
