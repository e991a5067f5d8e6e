package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName = errors.New("name is required")

	// Lookup errors
	ErrProjectNotFound = errors.New("project not found")
)
