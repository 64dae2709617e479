package repositories

import (
	"context"

	"project-lookup-api/internal/models"
)

// ProjectRepository reads and writes project items keyed by user.
type ProjectRepository interface {
	// QueryByUser returns at most limit items whose partition key equals user,
	// in store order. Items past limit are dropped; there is no cursor.
	QueryByUser(ctx context.Context, user string, limit int) ([]models.Project, error)

	// Put stores an item, replacing any existing item with the same key.
	Put(ctx context.Context, item models.Project) error

	// Close releases any resources held by the repository
	Close() error
}
