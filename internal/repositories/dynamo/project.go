package dynamo

import (
	"context"
	"math"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"

	"project-lookup-api/internal/models"
	"project-lookup-api/internal/repositories"
)

// ProjectRepository queries project items from a DynamoDB table whose
// partition key is "user".
type ProjectRepository struct {
	client    Client
	tableName string
	logger    *logrus.Logger
}

// NewProjectRepository creates a new DynamoDB-backed project repository
func NewProjectRepository(client Client, tableName string, logger *logrus.Logger) *ProjectRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &ProjectRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// QueryByUser issues a single Query call. Only the first page is read.
func (r *ProjectRepository) QueryByUser(ctx context.Context, user string, limit int) ([]models.Project, error) {
	if r.client == nil {
		return nil, repositories.NewRepositoryError("Query", "project", user, repositories.ErrNotConfigured)
	}

	// "user" is a DynamoDB reserved word, so the builder's placeholder names are required.
	keyCond := expression.Key(models.PartitionKey).Equal(expression.Value(user))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, repositories.NewRepositoryError("Query", "project", user, err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if limit > 0 {
		if limit > math.MaxInt32 {
			limit = math.MaxInt32
		}
		input.Limit = aws.Int32(int32(limit))
	}

	response, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, classifyError("Query", user, err)
	}

	items := make([]models.Project, 0, len(response.Items))
	if err := attributevalue.UnmarshalListOfMaps(response.Items, &items); err != nil {
		return nil, repositories.NewRepositoryError("Query", "project", user, err)
	}
	if items == nil {
		items = []models.Project{}
	}

	r.logger.WithFields(logrus.Fields{
		"table":         r.tableName,
		"user":          user,
		"count":         len(items),
		"has_more_keys": len(response.LastEvaluatedKey) > 0,
	}).Debug("DynamoDB query completed")

	return items, nil
}

// Put writes an item with PutItem, replacing any item with the same key.
func (r *ProjectRepository) Put(ctx context.Context, item models.Project) error {
	if r.client == nil {
		return repositories.NewRepositoryError("PutItem", "project", item.User(), repositories.ErrNotConfigured)
	}
	if item.User() == "" {
		return repositories.NewRepositoryError("PutItem", "project", "", repositories.ErrInvalidUser)
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return repositories.NewRepositoryError("PutItem", "project", item.User(), err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return classifyError("PutItem", item.User(), err)
	}

	return nil
}

// Close is a no-op; the AWS client holds no resources that need releasing.
func (r *ProjectRepository) Close() error {
	return nil
}
