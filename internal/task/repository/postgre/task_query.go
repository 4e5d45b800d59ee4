package postgre

import (
	"fmt"
	"strings"

	repo "taskboard-api/internal/task/repository"
)

// buildGetOneTaskQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions. An empty clause
// means no field was set.
func (r *implRepository) buildGetOneTaskQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID > 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.ProjectID > 0 {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", idx))
		args = append(args, opt.ProjectID)
		idx++
	}
	if opt.Reference != "" {
		conditions = append(conditions, fmt.Sprintf("reference = $%d", idx))
		args = append(args, opt.Reference)
	}

	return strings.Join(conditions, " AND "), args
}

// buildListTasksQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListTasksQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	add := func(format string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if opt.ProjectID > 0 {
		add("project_id = $%d", opt.ProjectID)
	}
	if v, ok := opt.Status.Get(); ok {
		add("is_active = $%d", v)
	}
	if v, ok := opt.OwnerID.Get(); ok {
		add("owner_id = $%d", v)
	}
	if v, ok := opt.ColumnID.Get(); ok {
		add("column_id = $%d", v)
	}
	if v, ok := opt.SwimlaneID.Get(); ok {
		add("swimlane_id = $%d", v)
	}
	if v, ok := opt.CategoryID.Get(); ok {
		add("category_id = $%d", v)
	}
	if v, ok := opt.Priority.Get(); ok {
		add("priority = $%d", v)
	}
	if opt.ColorID != "" {
		add("color_id = $%d", opt.ColorID)
	}
	if opt.Reference != "" {
		add("reference = $%d", opt.Reference)
	}
	for _, term := range opt.TitleTerms {
		add("title ILIKE $%d", "%"+escapeLike(term)+"%")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "column_id ASC, swimlane_id ASC, position ASC, id ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	return strings.Join(parts, " "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
