package task

import "errors"

// Domain errors for task service
var (
	// Validation errors
	ErrEmptyTitle = errors.New("title is required")

	// Lookup errors
	ErrTaskNotFound    = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
)
