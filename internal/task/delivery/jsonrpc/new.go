package jsonrpc

import (
	"taskboard-api/internal/task"
	"taskboard-api/pkg/log"
)

// MaxBatchSize caps the number of calls in one batch.
const MaxBatchSize = 100

type handler struct {
	l       log.Logger
	uc      task.UseCase
	methods map[string]method
}

// New creates the JSON-RPC handler for the task API.
func New(l log.Logger, uc task.UseCase) *handler {
	h := &handler{l: l, uc: uc}
	h.methods = h.methodTable()
	return h
}
