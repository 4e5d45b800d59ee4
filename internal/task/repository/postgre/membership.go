package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"taskboard-api/internal/model"
	repo "taskboard-api/internal/task/repository"
)

// GetOneUser returns a zero-value User when not found.
func (r *implRepository) GetOneUser(ctx context.Context, id int64) (model.User, error) {
	const query = `SELECT id, username, role, is_active FROM users WHERE id = $1`

	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Role, &u.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// GetProjectRole returns the user's direct project role, or "" when the
// user is not a member.
func (r *implRepository) GetProjectRole(ctx context.Context, projectID, userID int64) (string, error) {
	const query = `SELECT role FROM project_has_users WHERE project_id = $1 AND user_id = $2`

	var role string
	err := r.db.QueryRow(ctx, query, projectID, userID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProjectRole"), err)
		return "", repo.ErrFailedToGet
	}
	return role, nil
}
