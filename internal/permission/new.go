package permission

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
	"taskboard-api/pkg/log"
)

// Store is the data the gate reads.
type Store interface {
	GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error)
	GetOneProject(ctx context.Context, id int64) (model.Project, error)
	GetOneUser(ctx context.Context, id int64) (model.User, error)
	GetProjectRole(ctx context.Context, projectID, userID int64) (string, error)
}

// CacheConfig bounds the role cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type roleKey struct {
	projectID int64
	userID    int64
}

type implGate struct {
	l     log.Logger
	store Store
	roles *expirable.LRU[roleKey, string]
}

var _ task.PermissionGate = (*implGate)(nil)

// New creates a PermissionGate. Resolved project roles are cached for
// cfg.TTL; a zero Size disables caching.
func New(l log.Logger, store Store, cfg CacheConfig) *implGate {
	g := &implGate{l: l, store: store}
	if cfg.Size > 0 {
		g.roles = expirable.NewLRU[roleKey, string](cfg.Size, nil, cfg.TTL)
	}
	return g
}

func (g *implGate) dsn(method string) string {
	return fmt.Sprintf("permission.%s", method)
}
