package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin/binding"

	"taskboard-api/internal/task"
	rpc "taskboard-api/pkg/jsonrpc"
	"taskboard-api/pkg/optional"
)

// bindParams maps req params onto dst (positional params follow names)
// and runs the binding tags.
func bindParams(req rpc.Request, names []string, dst any) error {
	if err := req.BindParams(names, dst); err != nil {
		return &paramsError{err: err}
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return &paramsError{err: err}
	}
	return nil
}

// dueDate accepts the due date as a string or as the Unix seconds records
// are returned with. A numeric 0 means no due date.
type dueDate string

func (d *dueDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = dueDate(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("date_due: %w", err)
	}
	sec, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil || sec < 0 {
		return fmt.Errorf("date_due: %q is not a unix timestamp", n.String())
	}
	if sec == 0 {
		*d = ""
		return nil
	}
	*d = dueDate(strconv.FormatInt(sec, 10))
	return nil
}

func optionalDueDate(v optional.Value[dueDate]) optional.Value[string] {
	if d, ok := v.Get(); ok {
		return optional.Of(string(d))
	}
	return optional.None[string]()
}

// --- Request DTOs ---

type taskIDReq struct {
	TaskID int64 `json:"task_id" binding:"required,gt=0"`
}

var taskIDNames = []string{"task_id"}

// ---

type projectIDReq struct {
	ProjectID int64 `json:"project_id" binding:"required,gt=0"`
}

var projectIDNames = []string{"project_id"}

// ---

type searchTasksReq struct {
	ProjectID int64  `json:"project_id" binding:"required,gt=0"`
	Query     string `json:"query"`
}

var searchTasksNames = []string{"project_id", "query"}

// ---

type getTaskByReferenceReq struct {
	ProjectID int64  `json:"project_id" binding:"required,gt=0"`
	Reference string `json:"reference"  binding:"required"`
}

var getTaskByReferenceNames = []string{"project_id", "reference"}

// ---

type getAllTasksReq struct {
	ProjectID int64               `json:"project_id" binding:"required,gt=0"`
	StatusID  optional.Value[int] `json:"status_id"`
}

var getAllTasksNames = []string{"project_id", "status_id"}

func (r getAllTasksReq) toInput() task.GetAllTasksInput {
	return task.GetAllTasksInput{ProjectID: r.ProjectID, Status: r.StatusID}
}

// ---

type moveTaskPositionReq struct {
	ProjectID  int64 `json:"project_id"  binding:"required,gt=0"`
	TaskID     int64 `json:"task_id"     binding:"required,gt=0"`
	ColumnID   int64 `json:"column_id"   binding:"required,gt=0"`
	Position   int   `json:"position"`
	SwimlaneID int64 `json:"swimlane_id" binding:"gte=0"`
}

var moveTaskPositionNames = []string{"project_id", "task_id", "column_id", "position", "swimlane_id"}

func (r moveTaskPositionReq) toInput() task.MoveTaskPositionInput {
	return task.MoveTaskPositionInput{
		ProjectID:  r.ProjectID,
		TaskID:     r.TaskID,
		ColumnID:   r.ColumnID,
		Position:   r.Position,
		SwimlaneID: r.SwimlaneID,
	}
}

// ---

type transplantReq struct {
	TaskID     int64                 `json:"task_id"    binding:"required,gt=0"`
	ProjectID  int64                 `json:"project_id" binding:"required,gt=0"`
	SwimlaneID optional.Value[int64] `json:"swimlane_id"`
	ColumnID   optional.Value[int64] `json:"column_id"`
	CategoryID optional.Value[int64] `json:"category_id"`
	OwnerID    optional.Value[int64] `json:"owner_id"`
}

var transplantNames = []string{"task_id", "project_id", "swimlane_id", "column_id", "category_id", "owner_id"}

func (r transplantReq) toInput() task.TransplantInput {
	return task.TransplantInput{
		TaskID:     r.TaskID,
		ProjectID:  r.ProjectID,
		SwimlaneID: r.SwimlaneID,
		ColumnID:   r.ColumnID,
		CategoryID: r.CategoryID,
		OwnerID:    r.OwnerID,
	}
}

// ---

// createTaskReq leaves field checks to the task validator so that callers
// get per-field messages.
type createTaskReq struct {
	Title               string  `json:"title"`
	ProjectID           int64   `json:"project_id"`
	ColorID             string  `json:"color_id"`
	ColumnID            int64   `json:"column_id"`
	OwnerID             int64   `json:"owner_id"`
	CreatorID           int64   `json:"creator_id"`
	DateDue             dueDate `json:"date_due"`
	Description         string  `json:"description"`
	CategoryID          int64   `json:"category_id"`
	Score               int     `json:"score"`
	SwimlaneID          int64   `json:"swimlane_id"`
	Priority            int     `json:"priority"`
	RecurrenceStatus    int     `json:"recurrence_status"`
	RecurrenceTrigger   int     `json:"recurrence_trigger"`
	RecurrenceFactor    int     `json:"recurrence_factor"`
	RecurrenceTimeframe int     `json:"recurrence_timeframe"`
	RecurrenceBasedate  int     `json:"recurrence_basedate"`
	Reference           string  `json:"reference"`
}

var createTaskNames = []string{
	"title", "project_id", "color_id", "column_id", "owner_id", "creator_id", "date_due",
	"description", "category_id", "score", "swimlane_id", "priority",
	"recurrence_status", "recurrence_trigger", "recurrence_factor", "recurrence_timeframe",
	"recurrence_basedate", "reference",
}

func (r createTaskReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:               r.Title,
		ProjectID:           r.ProjectID,
		ColorID:             r.ColorID,
		ColumnID:            r.ColumnID,
		OwnerID:             r.OwnerID,
		CreatorID:           r.CreatorID,
		DateDue:             string(r.DateDue),
		Description:         r.Description,
		CategoryID:          r.CategoryID,
		Score:               r.Score,
		SwimlaneID:          r.SwimlaneID,
		Priority:            r.Priority,
		RecurrenceStatus:    r.RecurrenceStatus,
		RecurrenceTrigger:   r.RecurrenceTrigger,
		RecurrenceFactor:    r.RecurrenceFactor,
		RecurrenceTimeframe: r.RecurrenceTimeframe,
		RecurrenceBasedate:  r.RecurrenceBasedate,
		Reference:           r.Reference,
	}
}

// ---

type updateTaskReq struct {
	ID                  int64                   `json:"id" binding:"required,gt=0"`
	Title               optional.Value[string]  `json:"title"`
	ColorID             optional.Value[string]  `json:"color_id"`
	OwnerID             optional.Value[int64]   `json:"owner_id"`
	DateDue             optional.Value[dueDate] `json:"date_due"`
	Description         optional.Value[string]  `json:"description"`
	CategoryID          optional.Value[int64]   `json:"category_id"`
	Score               optional.Value[int]     `json:"score"`
	Priority            optional.Value[int]     `json:"priority"`
	RecurrenceStatus    optional.Value[int]     `json:"recurrence_status"`
	RecurrenceTrigger   optional.Value[int]     `json:"recurrence_trigger"`
	RecurrenceFactor    optional.Value[int]     `json:"recurrence_factor"`
	RecurrenceTimeframe optional.Value[int]     `json:"recurrence_timeframe"`
	RecurrenceBasedate  optional.Value[int]     `json:"recurrence_basedate"`
	Reference           optional.Value[string]  `json:"reference"`
}

var updateTaskNames = []string{
	"id", "title", "color_id", "owner_id", "date_due", "description", "category_id",
	"score", "priority", "recurrence_status", "recurrence_trigger", "recurrence_factor",
	"recurrence_timeframe", "recurrence_basedate", "reference",
}

func (r updateTaskReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:                  r.ID,
		Title:               r.Title,
		ColorID:             r.ColorID,
		OwnerID:             r.OwnerID,
		DateDue:             optionalDueDate(r.DateDue),
		Description:         r.Description,
		CategoryID:          r.CategoryID,
		Score:               r.Score,
		Priority:            r.Priority,
		RecurrenceStatus:    r.RecurrenceStatus,
		RecurrenceTrigger:   r.RecurrenceTrigger,
		RecurrenceFactor:    r.RecurrenceFactor,
		RecurrenceTimeframe: r.RecurrenceTimeframe,
		RecurrenceBasedate:  r.RecurrenceBasedate,
		Reference:           r.Reference,
	}
}
