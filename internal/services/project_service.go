package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"project-lookup-api/internal/models"
	"project-lookup-api/internal/repositories"
)

// QueryLimit is the fixed page size for a project lookup. Items past it are
// not returned and no continuation token is offered.
const QueryLimit = 100

// projectService implements ProjectService
type projectService struct {
	projectRepo repositories.ProjectRepository
	logger      *logrus.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repositories.ProjectRepository, logger *logrus.Logger) ProjectService {
	if logger == nil {
		logger = logrus.New()
	}
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// ListProjects runs exactly one query against the repository.
func (s *projectService) ListProjects(ctx context.Context, user string) (*models.ProjectList, error) {
	if s.projectRepo == nil {
		return nil, &UnexpectedFailure{Message: "project repository is not configured"}
	}
	if user == "" {
		return nil, &UnexpectedFailure{Message: "user is required"}
	}

	items, err := s.projectRepo.QueryByUser(ctx, user, QueryLimit)
	if err != nil {
		failure := ClassifyFailure(err)
		s.logger.WithFields(logrus.Fields{
			"user":  user,
			"error": err.Error(),
		}).Debug("Project query failed")
		return nil, failure
	}

	return models.NewProjectList(items), nil
}
