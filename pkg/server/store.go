package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"project-lookup-api/internal/config"
	"project-lookup-api/internal/repositories"
	"project-lookup-api/internal/repositories/dynamo"
	"project-lookup-api/internal/repositories/memory"
	"project-lookup-api/internal/repositories/sqlite"
)

// NewProjectRepository creates the ProjectRepository selected by cfg.Type
func NewProjectRepository(ctx context.Context, cfg config.StoreConfig, logger *logrus.Logger) (repositories.ProjectRepository, error) {
	switch storeType := repositories.ParseStoreType(cfg.Type); storeType {
	case repositories.StoreTypeDynamoDB, "":
		if cfg.TableName == "" {
			return nil, fmt.Errorf("table name is required for dynamodb store")
		}
		client, err := dynamo.NewClient(ctx, cfg.Region, cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		return dynamo.NewProjectRepository(client, cfg.TableName, logger), nil
	case repositories.StoreTypeSQLite:
		return sqlite.Open(cfg.SQLitePath, logger)
	case repositories.StoreTypeMemory:
		return memory.NewProjectRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported store type %q: %w", cfg.Type, repositories.ErrUnsupported)
	}
}
