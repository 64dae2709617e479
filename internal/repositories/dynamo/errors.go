package dynamo

import (
	"errors"

	"github.com/aws/smithy-go"

	"project-lookup-api/internal/repositories"
)

// classifyError separates failures DynamoDB reported with an error code from
// transport and client-side faults.
func classifyError(op, user string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return repositories.NewServiceError(op, apiErr.ErrorCode(), err)
	}
	return repositories.NewRepositoryError(op, "project", user, err)
}
