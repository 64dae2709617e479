package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"project-lookup-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	ProjectService ProjectService

	projectRepo repositories.ProjectRepository
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(projectRepo repositories.ProjectRepository, logger *logrus.Logger) (*ServiceContainer, error) {
	if projectRepo == nil {
		return nil, fmt.Errorf("project repository cannot be nil")
	}

	return &ServiceContainer{
		ProjectService: NewProjectService(projectRepo, logger),
		projectRepo:    projectRepo,
	}, nil
}

// Close releases the repositories owned by the container
func (c *ServiceContainer) Close() error {
	if c.projectRepo != nil {
		if err := c.projectRepo.Close(); err != nil {
			return fmt.Errorf("failed to close project repository: %w", err)
		}
	}
	return nil
}
