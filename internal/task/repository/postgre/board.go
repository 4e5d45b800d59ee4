package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taskboard-api/internal/model"
	repo "taskboard-api/internal/task/repository"
)

// GetOneProject returns a zero-value Project when not found.
func (r *implRepository) GetOneProject(ctx context.Context, id int64) (model.Project, error) {
	const query = `
		SELECT id, name, is_active, is_everybody_allowed, owner_id, default_task_color_id
		FROM projects WHERE id = $1`

	var p model.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.IsActive, &p.IsEverybodyAllowed, &p.OwnerID, &p.DefaultTaskColorID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

// GetOneColumn selects by id, by title in a project, or the first column
// of a project.
func (r *implRepository) GetOneColumn(ctx context.Context, opt repo.GetOneColumnOptions) (model.Column, error) {
	query := `SELECT id, project_id, title, position FROM columns`
	var args []any
	switch {
	case opt.ID > 0:
		query += ` WHERE id = $1`
		args = append(args, opt.ID)
	case opt.Title != "":
		query += ` WHERE project_id = $1 AND title = $2`
		args = append(args, opt.ProjectID, opt.Title)
	default:
		query += ` WHERE project_id = $1 ORDER BY position ASC LIMIT 1`
		args = append(args, opt.ProjectID)
	}

	var c model.Column
	err := r.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.ProjectID, &c.Title, &c.Position)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Column{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneColumn"), err)
		return model.Column{}, repo.ErrFailedToGet
	}
	return c, nil
}

// GetOneSwimlane selects by id, by name in a project, or the first active
// swimlane of a project.
func (r *implRepository) GetOneSwimlane(ctx context.Context, opt repo.GetOneSwimlaneOptions) (model.Swimlane, error) {
	query := `SELECT id, project_id, name, position, is_active FROM swimlanes`
	var args []any
	switch {
	case opt.ID > 0:
		query += ` WHERE id = $1`
		args = append(args, opt.ID)
	case opt.Name != "":
		query += ` WHERE project_id = $1 AND name = $2`
		args = append(args, opt.ProjectID, opt.Name)
	default:
		query += ` WHERE project_id = $1 AND is_active = TRUE ORDER BY position ASC LIMIT 1`
		args = append(args, opt.ProjectID)
	}

	var s model.Swimlane
	err := r.db.QueryRow(ctx, query, args...).Scan(&s.ID, &s.ProjectID, &s.Name, &s.Position, &s.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Swimlane{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSwimlane"), err)
		return model.Swimlane{}, repo.ErrFailedToGet
	}
	return s, nil
}

// GetOneCategory selects by id or by name in a project.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (model.Category, error) {
	var (
		query string
		args  []any
	)
	switch {
	case opt.ID > 0:
		query = `SELECT id, project_id, name FROM categories WHERE id = $1`
		args = append(args, opt.ID)
	case opt.Name != "":
		query = `SELECT id, project_id, name FROM categories WHERE project_id = $1 AND name = $2`
		args = append(args, opt.ProjectID, opt.Name)
	default:
		return model.Category{}, fmt.Errorf("%s: id or name is required", r.dsn("GetOneCategory"))
	}

	var c model.Category
	err := r.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.ProjectID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}
