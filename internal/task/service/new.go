package service

import (
	"context"
	"time"

	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
	"taskboard-api/pkg/datemath"
	"taskboard-api/pkg/log"
)

// OwnerChecker reports whether a user may own tasks in a project.
type OwnerChecker interface {
	IsOwnerAssignable(ctx context.Context, projectID, userID int64) (bool, error)
}

type implService struct {
	l      log.Logger
	repo   repository.Repository
	events repository.EventRepository
	owners OwnerChecker
	dates  *datemath.Parser
	now    func() time.Time
}

var (
	_ task.Finder           = (*implService)(nil)
	_ task.Lifecycle        = (*implService)(nil)
	_ task.StatusController = (*implService)(nil)
	_ task.Positioner       = (*implService)(nil)
	_ task.Transplanter     = (*implService)(nil)
)

// New creates the task collaborators backed by repo. Events are published
// after each successful write.
func New(l log.Logger, repo repository.Repository, events repository.EventRepository, owners OwnerChecker, dates *datemath.Parser) *implService {
	return &implService{
		l:      l,
		repo:   repo,
		events: events,
		owners: owners,
		dates:  dates,
		now:    time.Now,
	}
}
