package model

import "time"

// Task status values as stored in is_active.
const (
	TaskStatusClosed = 0
	TaskStatusOpen   = 1
	TaskStatusAll    = -1
)

// Recurrence status values.
const (
	RecurringStatusNone      = 0
	RecurringStatusPending   = 1
	RecurringStatusProcessed = 2
)

// Task is a unit of work on a project board.
type Task struct {
	ID          int64
	Title       string
	Description string
	ProjectID   int64
	ColumnID    int64
	SwimlaneID  int64
	CategoryID  int64
	OwnerID     int64
	CreatorID   int64
	ColorID     string
	Reference   string
	Position    int
	Score       int
	Priority    int
	IsActive    int
	DateDue     *time.Time

	RecurrenceStatus    int
	RecurrenceTrigger   int
	RecurrenceFactor    int
	RecurrenceTimeframe int
	RecurrenceBasedate  int
	RecurrenceParent    *int64
	RecurrenceChild     *int64

	DateCreation     time.Time
	DateModification time.Time
	DateCompleted    *time.Time
	DateMoved        time.Time
}

// IsOpen reports whether the task is open.
func (t Task) IsOpen() bool {
	return t.IsActive == TaskStatusOpen
}

// OverdueTask is a task past its due date, joined with project and owner
// details.
type OverdueTask struct {
	ID            int64
	Title         string
	DateDue       time.Time
	ProjectID     int64
	ProjectName   string
	OwnerID       int64
	OwnerUsername string
}
