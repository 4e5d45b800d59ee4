package postgre

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"taskboard-api/internal/model"
	repo "taskboard-api/internal/task/repository"
)

const taskColumns = `id, title, description, project_id, column_id, swimlane_id, category_id,
	owner_id, creator_id, color_id, reference, position, score, priority, is_active, date_due,
	recurrence_status, recurrence_trigger, recurrence_factor, recurrence_timeframe,
	recurrence_basedate, recurrence_parent, recurrence_child,
	date_creation, date_modification, date_completed, date_moved`

// updatableColumns whitelists the columns UpdateTask may write.
var updatableColumns = map[string]bool{
	"title":                true,
	"description":          true,
	"project_id":           true,
	"column_id":            true,
	"swimlane_id":          true,
	"category_id":          true,
	"owner_id":             true,
	"creator_id":           true,
	"color_id":             true,
	"reference":            true,
	"position":             true,
	"score":                true,
	"priority":             true,
	"is_active":            true,
	"date_due":             true,
	"recurrence_status":    true,
	"recurrence_trigger":   true,
	"recurrence_factor":    true,
	"recurrence_timeframe": true,
	"recurrence_basedate":  true,
	"recurrence_parent":    true,
	"recurrence_child":     true,
	"date_modification":    true,
	"date_completed":       true,
	"date_moved":           true,
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.ColumnID, &t.SwimlaneID, &t.CategoryID,
		&t.OwnerID, &t.CreatorID, &t.ColorID, &t.Reference, &t.Position, &t.Score, &t.Priority, &t.IsActive, &t.DateDue,
		&t.RecurrenceStatus, &t.RecurrenceTrigger, &t.RecurrenceFactor, &t.RecurrenceTimeframe,
		&t.RecurrenceBasedate, &t.RecurrenceParent, &t.RecurrenceChild,
		&t.DateCreation, &t.DateModification, &t.DateCompleted, &t.DateMoved,
	)
	return t, err
}

// CreateTask inserts a new open task row and returns its id.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (int64, error) {
	const query = `
		INSERT INTO tasks (
			title, description, project_id, column_id, swimlane_id, category_id,
			owner_id, creator_id, color_id, reference, position, score, priority, is_active, date_due,
			recurrence_status, recurrence_trigger, recurrence_factor, recurrence_timeframe,
			recurrence_basedate, recurrence_parent,
			date_creation, date_modification, date_moved
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 1, $14,
			$15, $16, $17, $18, $19, $20, $21, $21, $21
		)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		opt.Title, opt.Description, opt.ProjectID, opt.ColumnID, opt.SwimlaneID, opt.CategoryID,
		opt.OwnerID, opt.CreatorID, opt.ColorID, opt.Reference, opt.Position, opt.Score, opt.Priority, opt.DateDue,
		opt.RecurrenceStatus, opt.RecurrenceTrigger, opt.RecurrenceFactor, opt.RecurrenceTimeframe,
		opt.RecurrenceBasedate, opt.RecurrenceParent, opt.Now,
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns a zero-value Task (ID == 0) when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneTaskQuery(opt)
	if mods == "" {
		return model.Task{}, nil
	}
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the tasks matching every set filter.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListTasksQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// ListOverdueTasks returns open tasks of active projects due before opt.Now.
func (r *implRepository) ListOverdueTasks(ctx context.Context, opt repo.ListOverdueTasksOptions) ([]model.OverdueTask, error) {
	query := `
		SELECT t.id, t.title, t.date_due, t.project_id, p.name, t.owner_id, COALESCE(u.username, '')
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		LEFT JOIN users u ON u.id = t.owner_id
		WHERE t.is_active = 1 AND p.is_active = TRUE
			AND t.date_due IS NOT NULL AND t.date_due <= $1`
	args := []any{opt.Now}
	if opt.ProjectID > 0 {
		query += " AND t.project_id = $2"
		args = append(args, opt.ProjectID)
	}
	query += " ORDER BY t.date_due ASC, t.id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOverdueTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.OverdueTask, 0)
	for rows.Next() {
		var t model.OverdueTask
		if err := rows.Scan(&t.ID, &t.Title, &t.DateDue, &t.ProjectID, &t.ProjectName, &t.OwnerID, &t.OwnerUsername); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOverdueTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOverdueTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask writes opt.Values to one task. Column names are checked
// against a whitelist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) error {
	if len(opt.Values) == 0 {
		return nil
	}

	cols := make([]string, 0, len(opt.Values))
	for col := range opt.Values {
		if !updatableColumns[col] {
			return fmt.Errorf("%w: %s", repo.ErrUnknownColumn, col)
		}
		cols = append(cols, col)
	}
	// Stable SQL text for the same column set.
	sort.Strings(cols)

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, opt.Values[col])
	}
	args = append(args, opt.ID)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteTask removes a task and reports whether a row was deleted.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}

// ReorderTasks writes every placement inside one transaction.
func (r *implRepository) ReorderTasks(ctx context.Context, opt repo.ReorderTasksOptions) error {
	const query = `
		UPDATE tasks
		SET column_id = $1, swimlane_id = $2, position = $3,
			date_moved = CASE WHEN $4::boolean THEN $5::timestamptz ELSE date_moved END,
			date_modification = CASE WHEN $4::boolean THEN $5::timestamptz ELSE date_modification END
		WHERE id = $6`

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, p := range opt.Placements {
			if _, err := tx.Exec(ctx, query, p.ColumnID, p.SwimlaneID, p.Position, p.Moved, opt.Now, p.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReorderTasks"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// GetMaxPosition returns the highest position among open tasks of a
// column and swimlane, or 0 when empty.
func (r *implRepository) GetMaxPosition(ctx context.Context, opt repo.GetMaxPositionOptions) (int, error) {
	const query = `
		SELECT COALESCE(MAX(position), 0) FROM tasks
		WHERE project_id = $1 AND column_id = $2 AND swimlane_id = $3 AND is_active = 1`

	var pos int
	if err := r.db.QueryRow(ctx, query, opt.ProjectID, opt.ColumnID, opt.SwimlaneID).Scan(&pos); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMaxPosition"), err)
		return 0, repo.ErrFailedToGet
	}
	return pos, nil
}
