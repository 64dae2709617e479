package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"project-lookup-api/internal/config"
	"project-lookup-api/internal/repositories"
	"project-lookup-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *logrus.Logger
	ProjectRepository repositories.ProjectRepository
	ProjectService    services.ProjectService

	// Internal dependencies
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := config.NewLogger(cfg.Log)

	projectRepo, err := NewProjectRepository(ctx, cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	serviceContainer, err := services.NewServiceContainer(projectRepo, logger)
	if err != nil {
		projectRepo.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	logger.WithFields(containerFields(cfg, config.GetServerlessConfig())).Info("Container initialized")

	return &Container{
		Config:            cfg,
		Logger:            logger,
		ProjectRepository: projectRepo,
		ProjectService:    serviceContainer.ProjectService,
		services:          serviceContainer,
	}, nil
}

func containerFields(cfg *config.Config, sc *config.ServerlessConfig) logrus.Fields {
	fields := logrus.Fields{
		"store":       cfg.Store.Type,
		"table":       cfg.Store.TableName,
		"environment": cfg.Environment,
		"mode":        config.GetDeploymentMode(),
	}
	if sc != nil && sc.IsLambda {
		fields["function_name"] = sc.FunctionName
		fields["lambda_region"] = sc.Region
		fields["stage"] = sc.Stage
	}
	return fields
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}
	return nil
}
