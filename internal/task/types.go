package task

import (
	"taskboard-api/internal/model"
	"taskboard-api/pkg/optional"
)

// Record is a task formatted for API consumers.
type Record struct {
	model.Task
	URL   string
	Color model.Color
}

// --- UseCase Inputs ---

// GetAllTasksInput lists a project's tasks. An unset Status means open
// tasks only.
type GetAllTasksInput struct {
	ProjectID int64
	Status    optional.Value[int]
}

type MoveTaskPositionInput struct {
	ProjectID  int64
	TaskID     int64
	ColumnID   int64
	Position   int
	SwimlaneID int64
}

// TransplantInput moves or duplicates a task into ProjectID. Unset
// optional ids keep (or remap) the source value.
type TransplantInput struct {
	TaskID     int64
	ProjectID  int64
	SwimlaneID optional.Value[int64]
	ColumnID   optional.Value[int64]
	CategoryID optional.Value[int64]
	OwnerID    optional.Value[int64]
}

// CreateTaskInput carries every creatable field. Zero values are the
// defaults.
type CreateTaskInput struct {
	Title               string
	ProjectID           int64
	ColorID             string
	ColumnID            int64
	OwnerID             int64
	CreatorID           int64
	DateDue             string
	Description         string
	CategoryID          int64
	Score               int
	SwimlaneID          int64
	Priority            int
	RecurrenceStatus    int
	RecurrenceTrigger   int
	RecurrenceFactor    int
	RecurrenceTimeframe int
	RecurrenceBasedate  int
	Reference           string
}

// UpdateTaskInput is a partial update: only set fields are modified.
type UpdateTaskInput struct {
	ID                  int64
	Title               optional.Value[string]
	ColorID             optional.Value[string]
	OwnerID             optional.Value[int64]
	DateDue             optional.Value[string]
	Description         optional.Value[string]
	CategoryID          optional.Value[int64]
	Score               optional.Value[int]
	Priority            optional.Value[int]
	RecurrenceStatus    optional.Value[int]
	RecurrenceTrigger   optional.Value[int]
	RecurrenceFactor    optional.Value[int]
	RecurrenceTimeframe optional.Value[int]
	RecurrenceBasedate  optional.Value[int]
	Reference           optional.Value[string]
}
