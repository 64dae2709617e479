package services

import (
	"context"

	"project-lookup-api/internal/models"
)

// ProjectService defines the business operations behind the project lookup endpoint
type ProjectService interface {
	// ListProjects returns the first page of projects stored for user.
	// A non-nil error is always a *RecognizedFailure or an *UnexpectedFailure.
	ListProjects(ctx context.Context, user string) (*models.ProjectList, error)
}
