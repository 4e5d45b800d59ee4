package model

// Project scopes tasks, columns, swimlanes and categories.
type Project struct {
	ID                 int64
	Name               string
	IsActive           bool
	IsEverybodyAllowed bool
	OwnerID            int64
	DefaultTaskColorID string
}

// Column is a board column.
type Column struct {
	ID        int64
	ProjectID int64
	Title     string
	Position  int
}

// Swimlane is a horizontal board lane.
type Swimlane struct {
	ID        int64
	ProjectID int64
	Name      string
	Position  int
	IsActive  bool
}

// Category groups tasks inside a project.
type Category struct {
	ID        int64
	ProjectID int64
	Name      string
}

// User is an account that can own tasks.
type User struct {
	ID       int64
	Username string
	Role     string
	IsActive bool
}
