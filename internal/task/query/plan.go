package query

import (
	"context"
	"fmt"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
)

type plan struct {
	lister Lister
	opt    repository.ListTasksOptions
	err    error
}

// WithFilter returns a narrowed copy. Unsupported filters make Execute
// fail.
func (p *plan) WithFilter(f task.QueryFilter) task.QueryPlan {
	next := *p
	next.opt.TitleTerms = append([]string(nil), p.opt.TitleTerms...)

	switch f.Attribute() {
	case task.FilterAttributeProject:
		id, ok := f.Value().(int64)
		if !ok {
			next.err = fmt.Errorf("query: project filter value %v is not an id", f.Value())
			break
		}
		next.opt.ProjectID = id
	default:
		next.err = fmt.Errorf("query: unsupported filter %q", f.Attribute())
	}
	return &next
}

func (p *plan) Execute(ctx context.Context) ([]model.Task, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.lister.ListTasks(ctx, p.opt)
}
