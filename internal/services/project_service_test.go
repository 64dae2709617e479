package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"project-lookup-api/internal/models"
	"project-lookup-api/internal/repositories"
)

// Mock project repository for testing
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) QueryByUser(ctx context.Context, user string, limit int) ([]models.Project, error) {
	args := m.Called(ctx, user, limit)
	items, _ := args.Get(0).([]models.Project)
	return items, args.Error(1)
}

func (m *MockProjectRepository) Put(ctx context.Context, item models.Project) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockProjectRepository) Close() error {
	return m.Called().Error(0)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestProjectService_ListProjects(t *testing.T) {
	repo := new(MockProjectRepository)
	service := NewProjectService(repo, quietLogger())
	ctx := context.Background()

	items := []models.Project{
		{"user": "alice", "projectId": "p1"},
		{"user": "alice", "projectId": "p2"},
		{"user": "alice", "projectId": "p3"},
	}
	repo.On("QueryByUser", ctx, "alice", QueryLimit).Return(items, nil).Once()

	list, err := service.ListProjects(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, items, list.Projects)

	repo.AssertExpectations(t)
}

func TestProjectService_ListProjects_Empty(t *testing.T) {
	repo := new(MockProjectRepository)
	service := NewProjectService(repo, quietLogger())

	repo.On("QueryByUser", mock.Anything, "nobody", QueryLimit).Return(nil, nil)

	list, err := service.ListProjects(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, list.Count)
	assert.NotNil(t, list.Projects)
}

func TestProjectService_ListProjects_Failures(t *testing.T) {
	tests := []struct {
		name           string
		repoErr        error
		wantRecognized bool
		wantMessage    string
	}{
		{
			name:           "service error is recognized",
			repoErr:        repositories.NewServiceError("Query", "ThrottlingException", errors.New("Rate exceeded")),
			wantRecognized: true,
			wantMessage:    "Rate exceeded",
		},
		{
			name:        "plain error is unexpected",
			repoErr:     errors.New("connection reset by peer"),
			wantMessage: "connection reset by peer",
		},
		{
			name:        "repository error is unexpected",
			repoErr:     repositories.NewRepositoryError("Query", "project", "alice", errors.New("bad item")),
			wantMessage: "project Query operation failed for ID alice: bad item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProjectRepository)
			service := NewProjectService(repo, quietLogger())
			repo.On("QueryByUser", mock.Anything, "alice", QueryLimit).Return(nil, tt.repoErr)

			list, err := service.ListProjects(context.Background(), "alice")
			require.Error(t, err)
			assert.Nil(t, list)

			var recognized *RecognizedFailure
			var unexpected *UnexpectedFailure
			if tt.wantRecognized {
				require.ErrorAs(t, err, &recognized)
				assert.Equal(t, tt.wantMessage, recognized.Message)
				assert.Equal(t, "ThrottlingException", recognized.Code)
			} else {
				require.ErrorAs(t, err, &unexpected)
				assert.Equal(t, tt.wantMessage, unexpected.Message)
			}
		})
	}
}

func TestProjectService_NilRepository(t *testing.T) {
	service := NewProjectService(nil, nil)

	_, err := service.ListProjects(context.Background(), "alice")

	var unexpected *UnexpectedFailure
	assert.ErrorAs(t, err, &unexpected)
}

func TestClassifyFailure(t *testing.T) {
	assert.Nil(t, ClassifyFailure(nil))

	recognized := &RecognizedFailure{Code: "X", Message: "m"}
	assert.Same(t, recognized, ClassifyFailure(fmt.Errorf("wrapped: %w", recognized)))

	unexpected := &UnexpectedFailure{Message: "m"}
	assert.Same(t, unexpected, ClassifyFailure(unexpected))
}

func TestNewServiceContainer(t *testing.T) {
	_, err := NewServiceContainer(nil, nil)
	assert.Error(t, err)

	repo := new(MockProjectRepository)
	repo.On("Close").Return(nil).Once()

	container, err := NewServiceContainer(repo, quietLogger())
	require.NoError(t, err)
	assert.NotNil(t, container.ProjectService)
	assert.NoError(t, container.Close())
	repo.AssertExpectations(t)
}
