package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"project-lookup-api/internal/models"
	"project-lookup-api/internal/repositories"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*dynamodb.QueryOutput)
	return out, args.Error(1)
}

func (m *mockClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*dynamodb.PutItemOutput)
	return out, args.Error(1)
}

func newTestRepository(client Client) *ProjectRepository {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return NewProjectRepository(client, "3d-Viewer-UserDetails", logger)
}

func item(user, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user":      &types.AttributeValueMemberS{Value: user},
		"projectId": &types.AttributeValueMemberS{Value: id},
		"size":      &types.AttributeValueMemberN{Value: "3"},
	}
}

func TestProjectRepository_QueryByUser(t *testing.T) {
	client := new(mockClient)
	repo := newTestRepository(client)
	ctx := context.Background()

	client.On("Query", ctx, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		if aws.ToString(in.TableName) != "3d-Viewer-UserDetails" {
			return false
		}
		if aws.ToInt32(in.Limit) != 100 {
			return false
		}
		nameFound := false
		for _, name := range in.ExpressionAttributeNames {
			if name == "user" {
				nameFound = true
			}
		}
		valueFound := false
		for _, v := range in.ExpressionAttributeValues {
			if s, ok := v.(*types.AttributeValueMemberS); ok && s.Value == "alice" {
				valueFound = true
			}
		}
		return nameFound && valueFound && aws.ToString(in.KeyConditionExpression) != ""
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{
			item("alice", "p2"),
			item("alice", "p1"),
			item("alice", "p3"),
		},
	}, nil)

	items, err := repo.QueryByUser(ctx, "alice", 100)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "p2", items[0]["projectId"])
	assert.Equal(t, "p1", items[1]["projectId"])
	assert.Equal(t, "p3", items[2]["projectId"])
	assert.Equal(t, "alice", items[0].User())
	assert.EqualValues(t, 3, items[0]["size"])

	client.AssertExpectations(t)
}

func TestProjectRepository_QueryByUser_Empty(t *testing.T) {
	client := new(mockClient)
	repo := newTestRepository(client)

	client.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)

	items, err := repo.QueryByUser(context.Background(), "nobody", 100)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProjectRepository_QueryByUser_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantService bool
		wantCode    string
	}{
		{
			name:        "missing table",
			err:         &types.ResourceNotFoundException{Message: aws.String("Requested resource not found")},
			wantService: true,
			wantCode:    "ResourceNotFoundException",
		},
		{
			name:        "throttled",
			err:         &types.ProvisionedThroughputExceededException{Message: aws.String("Rate exceeded")},
			wantService: true,
			wantCode:    "ProvisionedThroughputExceededException",
		},
		{
			name:        "access denied",
			err:         &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "not authorized"},
			wantService: true,
			wantCode:    "AccessDeniedException",
		},
		{
			name:        "network fault",
			err:         errors.New("dial tcp: i/o timeout"),
			wantService: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockClient)
			repo := newTestRepository(client)
			client.On("Query", mock.Anything, mock.Anything).Return(nil, tt.err)

			items, err := repo.QueryByUser(context.Background(), "alice", 100)
			require.Error(t, err)
			assert.Nil(t, items)
			assert.Equal(t, tt.wantService, repositories.IsServiceError(err))

			if tt.wantService {
				var svcErr *repositories.ServiceError
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, tt.wantCode, svcErr.Code)
				assert.Equal(t, "Query", svcErr.Op)
			}
		})
	}
}

func TestProjectRepository_NilClient(t *testing.T) {
	repo := NewProjectRepository(nil, "table", nil)

	_, err := repo.QueryByUser(context.Background(), "alice", 100)
	assert.ErrorIs(t, err, repositories.ErrNotConfigured)
	assert.False(t, repositories.IsServiceError(err))
}

func TestProjectRepository_Put(t *testing.T) {
	client := new(mockClient)
	repo := newTestRepository(client)
	ctx := context.Background()

	client.On("PutItem", ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		user, ok := in.Item["user"].(*types.AttributeValueMemberS)
		return ok && user.Value == "alice" && aws.ToString(in.TableName) == "3d-Viewer-UserDetails"
	})).Return(&dynamodb.PutItemOutput{}, nil)

	err := repo.Put(ctx, models.Project{"user": "alice", "projectId": "p1"})
	require.NoError(t, err)
	client.AssertExpectations(t)

	err = repo.Put(ctx, models.Project{"projectId": "p1"})
	assert.ErrorIs(t, err, repositories.ErrInvalidUser)
}
