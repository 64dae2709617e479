package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrInvalidUser is returned when an item or query has no usable partition key
	ErrInvalidUser = errors.New("invalid user")

	// ErrNotConfigured is returned when a repository has no backing client
	ErrNotConfigured = errors.New("repository not configured")

	// ErrUnsupported is returned when an unsupported store type is requested
	ErrUnsupported = errors.New("unsupported operation")
)

// ServiceError is a failure the backing store classified itself, such as
// throttling, access denied or a missing table.
type ServiceError struct {
	Op   string // Operation that failed
	Code string // Store-specific error code
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new service error
func NewServiceError(op, code string, err error) *ServiceError {
	return &ServiceError{
		Op:   op,
		Code: code,
		Err:  err,
	}
}

// IsServiceError reports whether err carries a store-classified failure
func IsServiceError(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr)
}

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity type
	ID     string // Entity ID (if applicable)
	Err    error  // Underlying error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}
