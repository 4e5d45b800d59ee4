package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
	"taskboard-api/internal/permission"
	"taskboard-api/internal/task/delivery/jsonrpc"
	"taskboard-api/internal/task/query"
	taskRepo "taskboard-api/internal/task/repository/postgre"
	eventRepo "taskboard-api/internal/task/repository/rabbitmq"
	"taskboard-api/internal/task/service"
	"taskboard-api/internal/task/usecase"
	"taskboard-api/internal/task/validator"
)

// setupTaskDomain wires the task API and registers POST /jsonrpc.
//
//  1. Repository:    postgres store + event publisher
//  2. Collaborators: permission gate, task service, query engine, validator
//  3. UseCase:       facade over the collaborators
//  4. Delivery:      JSON-RPC handler
func (srv HTTPServer) setupTaskDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskRepo.New(srv.postgresDB, srv.l)
	events := srv.events
	if events == nil {
		events = eventRepo.NewNop()
	}

	// 2. Collaborators
	gate := permission.New(srv.l, repo, srv.permissionCfg)
	svc := service.New(srv.l, repo, events, gate, srv.dates)

	// 3. UseCase
	uc := usecase.New(srv.l, usecase.Deps{
		Gate:         gate,
		Finder:       svc,
		Query:        query.New(repo),
		Lifecycle:    svc,
		Status:       svc,
		Positioner:   svc,
		Transplanter: svc,
		Validator:    validator.New(srv.dates),
	}, srv.baseURL, srv.policy)

	// 4. Delivery
	jsonrpc.RegisterRoutes(rg, jsonrpc.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Task domain registered at POST /jsonrpc")
	return nil
}
