package memory

import (
	"context"
	"sync"

	"project-lookup-api/internal/models"
	"project-lookup-api/internal/repositories"
)

// ProjectRepository is an in-memory implementation of
// repositories.ProjectRepository for tests and quick local runs.
type ProjectRepository struct {
	mu    sync.RWMutex
	items map[string][]models.Project
}

// NewProjectRepository creates a new empty in-memory repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		items: make(map[string][]models.Project),
	}
}

// QueryByUser returns copies of up to limit items for user in insertion order.
func (m *ProjectRepository) QueryByUser(ctx context.Context, user string, limit int) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.items[user]
	if limit > 0 && len(stored) > limit {
		stored = stored[:limit]
	}

	result := make([]models.Project, 0, len(stored))
	for _, item := range stored {
		result = append(result, copyItem(item))
	}
	return result, nil
}

// Put stores a copy of item. An item with the same projectId replaces the
// existing one in place.
func (m *ProjectRepository) Put(ctx context.Context, item models.Project) error {
	user := item.User()
	if user == "" {
		return repositories.NewRepositoryError("Put", "project", "", repositories.ErrInvalidUser)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := copyItem(item)
	if key, ok := stored.ProjectKey(); ok {
		for i, existing := range m.items[user] {
			if existingKey, found := existing.ProjectKey(); found && existingKey == key {
				m.items[user][i] = stored
				return nil
			}
		}
	}

	m.items[user] = append(m.items[user], stored)
	return nil
}

// Close implements repositories.ProjectRepository.Close
func (m *ProjectRepository) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string][]models.Project)
	return nil
}

func copyItem(item models.Project) models.Project {
	c := make(models.Project, len(item))
	for k, v := range item {
		c[k] = v
	}
	return c
}
