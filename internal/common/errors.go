package common

import "errors"

// Business logic errors shared across services and handlers.
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Report errors
	ErrReportNotFound  = errors.New("report not found")
	ErrVersionNotFound = errors.New("version not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyTopic   = errors.New("topic is required")
)
