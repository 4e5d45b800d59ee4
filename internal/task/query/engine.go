package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
	"taskboard-api/pkg/optional"
)

// Lister runs a task listing.
type Lister interface {
	ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error)
}

type applyFunc func(opt *repository.ListTasksOptions, value string) error

var attributes = map[string]applyFunc{
	"status":    applyStatus,
	"assignee":  applyAssignee,
	"color":     applyColor,
	"category":  applyCategory,
	"column":    applyID(func(o *repository.ListTasksOptions, id int64) { o.ColumnID = optional.Of(id) }),
	"swimlane":  applyID(func(o *repository.ListTasksOptions, id int64) { o.SwimlaneID = optional.Of(id) }),
	"ref":       applyReference,
	"reference": applyReference,
	"priority":  applyPriority,
}

type implEngine struct {
	lister Lister
}

var _ task.QueryEngine = (*implEngine)(nil)

// New creates a QueryEngine running plans against lister.
func New(lister Lister) *implEngine {
	return &implEngine{lister: lister}
}

// Parse turns text into a plan. Without a status term only open tasks
// match. Malformed attribute values wrap task.ErrInvalidInput.
func (e *implEngine) Parse(text string) (task.QueryPlan, error) {
	opt := repository.ListTasksOptions{Status: optional.Of(model.TaskStatusOpen)}

	for _, tok := range tokenize(text) {
		if tok.attr == "" {
			opt.TitleTerms = append(opt.TitleTerms, tok.value)
			continue
		}
		if err := attributes[tok.attr](&opt, tok.value); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", task.ErrInvalidInput, tok.attr, err)
		}
	}
	return &plan{lister: e.lister, opt: opt}, nil
}

func applyStatus(opt *repository.ListTasksOptions, value string) error {
	switch strings.ToLower(value) {
	case "open":
		opt.Status = optional.Of(model.TaskStatusOpen)
	case "closed":
		opt.Status = optional.Of(model.TaskStatusClosed)
	case "all", "*":
		opt.Status = optional.None[int]()
	default:
		return fmt.Errorf("unknown status %q", value)
	}
	return nil
}

func applyAssignee(opt *repository.ListTasksOptions, value string) error {
	if strings.EqualFold(value, "nobody") {
		opt.OwnerID = optional.Of(int64(0))
		return nil
	}
	id, err := parseID(value)
	if err != nil {
		return err
	}
	opt.OwnerID = optional.Of(id)
	return nil
}

func applyColor(opt *repository.ListTasksOptions, value string) error {
	id := strings.ToLower(value)
	if _, ok := model.Colors[id]; !ok {
		id = ""
		for key, c := range model.Colors {
			if strings.EqualFold(c.Name, value) {
				id = key
				break
			}
		}
	}
	if id == "" {
		return fmt.Errorf("unknown color %q", value)
	}
	opt.ColorID = id
	return nil
}

func applyCategory(opt *repository.ListTasksOptions, value string) error {
	if strings.EqualFold(value, "none") {
		opt.CategoryID = optional.Of(int64(0))
		return nil
	}
	id, err := parseID(value)
	if err != nil {
		return err
	}
	opt.CategoryID = optional.Of(id)
	return nil
}

func applyReference(opt *repository.ListTasksOptions, value string) error {
	if value == "" {
		return fmt.Errorf("empty reference")
	}
	opt.Reference = value
	return nil
}

func applyPriority(opt *repository.ListTasksOptions, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("priority %q is not a number", value)
	}
	opt.Priority = optional.Of(n)
	return nil
}

func applyID(set func(o *repository.ListTasksOptions, id int64)) applyFunc {
	return func(opt *repository.ListTasksOptions, value string) error {
		id, err := parseID(value)
		if err != nil {
			return err
		}
		set(opt, id)
		return nil
	}
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%q is not an id", value)
	}
	return id, nil
}
