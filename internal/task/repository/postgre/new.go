package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard-api/internal/task/repository"
	"taskboard-api/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a new PostgreSQL-backed Repository for the task domain.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
