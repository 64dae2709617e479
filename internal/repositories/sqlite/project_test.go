package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-lookup-api/internal/models"
	"project-lookup-api/internal/repositories"
)

func setupTestRepository(t *testing.T) *ProjectRepository {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel) // Reduce noise in tests

	repo, err := Open(filepath.Join(t.TempDir(), "projects.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestProjectRepository_PutAndQuery(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	for _, id := range []string{"p3", "p1", "p2"} {
		require.NoError(t, repo.Put(ctx, models.Project{"user": "alice", "projectId": id, "name": "model " + id}))
	}
	require.NoError(t, repo.Put(ctx, models.Project{"user": "bob", "projectId": "p9"}))

	items, err := repo.QueryByUser(ctx, "alice", 100)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "p1", items[0]["projectId"])
	assert.Equal(t, "p2", items[1]["projectId"])
	assert.Equal(t, "p3", items[2]["projectId"])
	assert.Equal(t, "model p1", items[0]["name"])
}

func TestProjectRepository_QueryUnknownUser(t *testing.T) {
	repo := setupTestRepository(t)

	items, err := repo.QueryByUser(context.Background(), "nobody", 100)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProjectRepository_QueryLimit(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 105; i++ {
		require.NoError(t, repo.Put(ctx, models.Project{"user": "alice", "projectId": fmt.Sprintf("p%03d", i)}))
	}

	items, err := repo.QueryByUser(ctx, "alice", 100)
	require.NoError(t, err)
	assert.Len(t, items, 100)
	assert.Equal(t, "p000", items[0]["projectId"])
	assert.Equal(t, "p099", items[99]["projectId"])
}

func TestProjectRepository_PutReplaces(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.Project{"user": "alice", "projectId": "p1", "name": "old"}))
	require.NoError(t, repo.Put(ctx, models.Project{"user": "alice", "projectId": "p1", "name": "new"}))

	items, err := repo.QueryByUser(ctx, "alice", 100)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0]["name"])
}

func TestProjectRepository_PutGeneratesProjectID(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	item := models.Project{"user": "alice"}
	require.NoError(t, repo.Put(ctx, item))

	_, mutated := item["projectId"]
	assert.False(t, mutated, "Put should not modify the caller's item")

	items, err := repo.QueryByUser(ctx, "alice", 100)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0]["projectId"])
}

func TestProjectRepository_PutRequiresUser(t *testing.T) {
	repo := setupTestRepository(t)

	err := repo.Put(context.Background(), models.Project{"projectId": "p1"})
	assert.ErrorIs(t, err, repositories.ErrInvalidUser)
}

func TestProjectRepository_EngineErrorIsServiceError(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.db.Exec(`DROP TABLE project_items`)
	require.NoError(t, err)

	_, err = repo.QueryByUser(context.Background(), "alice", 100)
	require.Error(t, err)
	assert.True(t, repositories.IsServiceError(err))
	assert.Contains(t, err.Error(), "no such table")
}

func TestProjectRepository_PutKeepsNonStringProjectID(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.Project{"user": "a", "projectId": 7, "v": "first"}))
	require.NoError(t, repo.Put(ctx, models.Project{"user": "a", "projectId": 7, "v": "second"}))

	items, err := repo.QueryByUser(ctx, "a", 100)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 7, items[0]["projectId"])
	assert.Equal(t, "second", items[0]["v"])
}

func TestProjectRepository_PutKeepsEmptyProjectID(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.Project{"user": "a", "projectId": ""}))

	items, err := repo.QueryByUser(ctx, "a", 100)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0]["projectId"])
}
