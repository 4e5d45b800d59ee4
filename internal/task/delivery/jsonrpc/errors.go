package jsonrpc

import (
	"context"
	"errors"

	"taskboard-api/internal/task"
	rpc "taskboard-api/pkg/jsonrpc"
)

// Application error codes.
const (
	CodeForbidden        = 403
	CodeValidationFailed = -32010
)

// paramsError wraps a params binding failure.
type paramsError struct {
	err error
}

func (e *paramsError) Error() string { return "invalid params: " + e.err.Error() }
func (e *paramsError) Unwrap() error { return e.err }

// mapError translates use-case errors into a JSON-RPC result or error.
// Missing tasks and unassignable owners are not errors on the wire: they
// produce the method's failure result.
func (h *handler) mapError(ctx context.Context, name string, m method, err error) (any, *rpc.Error) {
	var pErr *paramsError
	var vErr *task.ValidationError

	switch {
	case errors.As(err, &pErr):
		return nil, rpc.NewError(rpc.CodeInvalidParams, "Invalid params", pErr.err.Error())
	case errors.As(err, &vErr):
		return nil, rpc.NewError(CodeValidationFailed, "Validation failed", vErr.Errors)
	case errors.Is(err, task.ErrPermissionDenied):
		return nil, rpc.NewError(CodeForbidden, "Forbidden", nil)
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, task.ErrOwnerNotAssignable):
		return m.failure, nil
	case errors.Is(err, task.ErrInvalidInput):
		return nil, rpc.NewError(rpc.CodeInvalidParams, "Invalid params", err.Error())
	default:
		h.l.Errorf(ctx, "jsonrpc.%s: %v", name, err)
		return nil, rpc.NewError(rpc.CodeInternalError, "Internal error", nil)
	}
}
