package repository

import (
	"time"

	"taskboard-api/pkg/optional"
)

// CreateTaskOptions holds a fully resolved task row.
type CreateTaskOptions struct {
	Title               string
	Description         string
	ProjectID           int64
	ColumnID            int64
	SwimlaneID          int64
	CategoryID          int64
	OwnerID             int64
	CreatorID           int64
	ColorID             string
	Reference           string
	Position            int
	Score               int
	Priority            int
	DateDue             *time.Time
	RecurrenceStatus    int
	RecurrenceTrigger   int
	RecurrenceFactor    int
	RecurrenceTimeframe int
	RecurrenceBasedate  int
	RecurrenceParent    *int64
	Now                 time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID        int64
	ProjectID int64
	Reference string
}

// ListTasksOptions holds filters for listing tasks. Unset optional values
// are not filtered on.
type ListTasksOptions struct {
	ProjectID  int64
	Status     optional.Value[int]
	OwnerID    optional.Value[int64]
	ColumnID   optional.Value[int64]
	SwimlaneID optional.Value[int64]
	CategoryID optional.Value[int64]
	Priority   optional.Value[int]
	ColorID    string
	Reference  string
	// TitleTerms must all appear in the title (case-insensitive).
	TitleTerms []string
	OrderBy    string
}

// ListOverdueTasksOptions lists open tasks due before Now. A zero
// ProjectID lists every project.
type ListOverdueTasksOptions struct {
	ProjectID int64
	Now       time.Time
}

// UpdateTaskOptions sets the given columns on one task. Keys are column
// names; unknown columns are rejected.
type UpdateTaskOptions struct {
	ID     int64
	Values map[string]any
}

// TaskPlacement is the target placement of one task.
type TaskPlacement struct {
	ID         int64
	ColumnID   int64
	SwimlaneID int64
	Position   int
	Moved      bool
}

// ReorderTasksOptions holds the placements to write.
type ReorderTasksOptions struct {
	Placements []TaskPlacement
	Now        time.Time
}

type GetMaxPositionOptions struct {
	ProjectID  int64
	ColumnID   int64
	SwimlaneID int64
}

// GetOneColumnOptions selects a column by id, or by title inside a
// project, or the first column of a project when only ProjectID is set.
type GetOneColumnOptions struct {
	ID        int64
	ProjectID int64
	Title     string
}

// GetOneSwimlaneOptions selects a swimlane by id, by name inside a
// project, or the first active swimlane of a project.
type GetOneSwimlaneOptions struct {
	ID        int64
	ProjectID int64
	Name      string
}

// GetOneCategoryOptions selects a category by id or by name inside a
// project.
type GetOneCategoryOptions struct {
	ID        int64
	ProjectID int64
	Name      string
}

// PublishTaskEventOptions describes one task event.
type PublishTaskEventOptions struct {
	Name      string
	TaskID    int64
	ProjectID int64
	Changes   map[string]any
	At        time.Time
}
