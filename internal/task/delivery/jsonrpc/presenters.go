package jsonrpc

import (
	"encoding/json"
	"time"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
)

// --- Response DTOs ---

type colorResp struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Border     string `json:"border"`
}

// taskResp mirrors the task record. Dates are Unix seconds, 0 when unset.
type taskResp struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	DateCreation        int64     `json:"date_creation"`
	DateModification    int64     `json:"date_modification"`
	DateCompleted       int64     `json:"date_completed"`
	DateMoved           int64     `json:"date_moved"`
	DateDue             int64     `json:"date_due"`
	ColorID             string    `json:"color_id"`
	ProjectID           int64     `json:"project_id"`
	ColumnID            int64     `json:"column_id"`
	SwimlaneID          int64     `json:"swimlane_id"`
	CategoryID          int64     `json:"category_id"`
	OwnerID             int64     `json:"owner_id"`
	CreatorID           int64     `json:"creator_id"`
	Position            int       `json:"position"`
	IsActive            int       `json:"is_active"`
	Score               int       `json:"score"`
	Priority            int       `json:"priority"`
	Reference           string    `json:"reference"`
	RecurrenceStatus    int       `json:"recurrence_status"`
	RecurrenceTrigger   int       `json:"recurrence_trigger"`
	RecurrenceFactor    int       `json:"recurrence_factor"`
	RecurrenceTimeframe int       `json:"recurrence_timeframe"`
	RecurrenceBasedate  int       `json:"recurrence_basedate"`
	RecurrenceParent    *int64    `json:"recurrence_parent"`
	RecurrenceChild     *int64    `json:"recurrence_child"`
	URL                 string    `json:"url"`
	Color               colorResp `json:"color"`
}

func newTaskResp(r task.Record) taskResp {
	return taskResp{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		DateCreation:        unix(&r.DateCreation),
		DateModification:    unix(&r.DateModification),
		DateCompleted:       unix(r.DateCompleted),
		DateMoved:           unix(&r.DateMoved),
		DateDue:             unix(r.DateDue),
		ColorID:             r.ColorID,
		ProjectID:           r.ProjectID,
		ColumnID:            r.ColumnID,
		SwimlaneID:          r.SwimlaneID,
		CategoryID:          r.CategoryID,
		OwnerID:             r.OwnerID,
		CreatorID:           r.CreatorID,
		Position:            r.Position,
		IsActive:            r.IsActive,
		Score:               r.Score,
		Priority:            r.Priority,
		Reference:           r.Reference,
		RecurrenceStatus:    r.RecurrenceStatus,
		RecurrenceTrigger:   r.RecurrenceTrigger,
		RecurrenceFactor:    r.RecurrenceFactor,
		RecurrenceTimeframe: r.RecurrenceTimeframe,
		RecurrenceBasedate:  r.RecurrenceBasedate,
		RecurrenceParent:    r.RecurrenceParent,
		RecurrenceChild:     r.RecurrenceChild,
		URL:                 r.URL,
		Color: colorResp{
			Name:       r.Color.Name,
			Background: r.Color.Background,
			Border:     r.Color.Border,
		},
	}
}

func newTaskListResp(records []task.Record) []taskResp {
	out := make([]taskResp, len(records))
	for i, r := range records {
		out[i] = newTaskResp(r)
	}
	return out
}

type overdueResp struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	DateDue          int64  `json:"date_due"`
	ProjectID        int64  `json:"project_id"`
	ProjectName      string `json:"project_name"`
	AssigneeID       int64  `json:"assignee_id"`
	AssigneeUsername string `json:"assignee_username"`
}

func newOverdueListResp(tasks []model.OverdueTask) []overdueResp {
	out := make([]overdueResp, len(tasks))
	for i, t := range tasks {
		out[i] = overdueResp{
			ID:               t.ID,
			Title:            t.Title,
			DateDue:          t.DateDue.Unix(),
			ProjectID:        t.ProjectID,
			ProjectName:      t.ProjectName,
			AssigneeID:       t.OwnerID,
			AssigneeUsername: t.OwnerUsername,
		}
	}
	return out
}

func unix(t *time.Time) int64 {
	if t == nil || t.IsZero() {
		return 0
	}
	return t.Unix()
}

// --- Swagger models ---

type rpcRequestDoc struct {
	JSONRPC string          `json:"jsonrpc" example:"2.0"`
	Method  string          `json:"method"  example:"getTask"`
	Params  json.RawMessage `json:"params"  swaggertype:"object"`
	ID      int             `json:"id"      example:"1"`
}

type rpcErrorDoc struct {
	Code    int    `json:"code"    example:"-32601"`
	Message string `json:"message" example:"Method not found"`
	Data    any    `json:"data,omitempty"`
}

type rpcResponseDoc struct {
	JSONRPC string       `json:"jsonrpc" example:"2.0"`
	Result  any          `json:"result,omitempty"`
	Error   *rpcErrorDoc `json:"error,omitempty"`
	ID      int          `json:"id" example:"1"`
}
