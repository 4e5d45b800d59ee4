package task

import (
	"errors"
	"sort"
	"strings"
)

// Domain-specific errors for the task package.
var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrTaskNotFound       = errors.New("task not found")
	ErrOwnerNotAssignable = errors.New("owner is not assignable in this project")
	ErrInvalidInput       = errors.New("invalid input")
)

// ValidationError is returned when a field mapping is rejected.
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
