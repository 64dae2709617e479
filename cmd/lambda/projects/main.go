package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"project-lookup-api/internal/handlers"
	"project-lookup-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromProxyRequest(event)

	// Preflight never waits on a cold start
	if req.IsPreflight() {
		return handlers.Preflight().ToProxyResponse(), nil
	}

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return handlers.InternalError(err).ToProxyResponse(), nil
	}

	projectHandler := handlers.NewProjectHandler(container.ProjectService, container.Logger)
	return projectHandler.Handle(ctx, req).ToProxyResponse(), nil
}

func main() {
	awslambda.Start(handler)
}
