package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"project-lookup-api/internal/cors"
	"project-lookup-api/internal/services"
	"project-lookup-api/pkg/lambda"
)

// validate is safe for concurrent use and caches struct metadata, so one
// instance serves every invocation.
var validate = validator.New()

// ListProjectsRequest is the expected request body
type ListProjectsRequest struct {
	User string `json:"user" validate:"required"`
}

// ProjectHandler serves the project lookup endpoint
type ProjectHandler struct {
	projectService services.ProjectService
	logger         *logrus.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService services.ProjectService, logger *logrus.Logger) *ProjectHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// @Summary List projects for a user
// @Description Returns up to 100 project items stored under the given user
// @Tags projects
// @Accept json
// @Produce json
// @Param request body ListProjectsRequest true "Lookup request"
// @Success 200 {object} models.ProjectList
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Handle(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	// Preflight is answered before anything else so it can never fail.
	if req.IsPreflight() {
		return Preflight()
	}

	start := time.Now()
	var user string
	var failure error
	count := -1

	defer func() {
		if r := recover(); r != nil {
			failure = &services.UnexpectedFailure{Message: fmt.Sprint(r)}
			resp = failureResponse(failure)
		}
		h.logResult(req, resp, user, count, failure, time.Since(start))
	}()

	if req == nil {
		req = &lambda.Request{}
	}

	raw := extractUser(req.Body)
	user, isString := raw.(string)
	if raw != nil && !isString {
		// The table keys on a string, so any other present value is a key type mismatch.
		failure = &services.RecognizedFailure{Code: UserTypeMismatchCode, Message: UserTypeMismatchMessage}
		return failureResponse(failure)
	}
	if err := validate.Struct(&ListProjectsRequest{User: user}); err != nil {
		return jsonResponse(http.StatusBadRequest, ErrorResponse{Error: MissingUserMessage})
	}

	list, err := h.projectService.ListProjects(ctx, user)
	if err != nil {
		failure = err
		return failureResponse(err)
	}

	count = list.Count
	return jsonResponse(http.StatusOK, list)
}

// Preflight answers a CORS preflight request
func Preflight() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    cors.Headers(),
		Body:       "",
	}
}

// InternalError builds the unexpected-failure response for err. It is used
// where no handler is available yet, such as a failed cold start.
func InternalError(err error) *lambda.Response {
	return failureResponse(&services.UnexpectedFailure{Message: err.Error()})
}

// extractUser reads the user field from a JSON object body. A body that is
// not an object and a falsy user (null, "", false, 0, [], {}) both give nil.
func extractUser(body string) interface{} {
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil
	}
	user := fields["user"]
	if !truthy(user) {
		return nil
	}
	return user
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}

func failureResponse(err error) *lambda.Response {
	var recognized *services.RecognizedFailure
	if errors.As(err, &recognized) {
		return jsonResponse(http.StatusInternalServerError, ErrorResponse{Error: recognized.Message})
	}

	message := err.Error()
	var unexpected *services.UnexpectedFailure
	if errors.As(err, &unexpected) {
		message = unexpected.Message
	}
	return jsonResponse(http.StatusInternalServerError, InternalErrorResponse{
		Error:   InternalErrorMessage,
		Message: message,
	})
}

func jsonResponse(status int, payload interface{}) *lambda.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		// InternalErrorResponse only holds strings, so this cannot fail
		body, _ = json.Marshal(InternalErrorResponse{Error: InternalErrorMessage, Message: err.Error()})
		status = http.StatusInternalServerError
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    cors.Headers(),
		Body:       string(body),
	}
}

func (h *ProjectHandler) logResult(req *lambda.Request, resp *lambda.Response, user string, count int, failure error, latency time.Duration) {
	fields := logrus.Fields{
		"latency_ms": float64(latency.Nanoseconds()) / 1000000,
	}
	if req != nil {
		fields["request_id"] = req.RequestID
		fields["method"] = req.HTTPMethod
	}
	if resp != nil {
		fields["status_code"] = resp.StatusCode
	}
	if user != "" {
		fields["user"] = user
	}
	if count >= 0 {
		fields["count"] = count
	}

	entry := h.logger.WithFields(fields)
	switch {
	case failure != nil:
		entry.WithError(failure).Error("Project lookup failed")
	case resp != nil && resp.StatusCode >= 400:
		entry.Warn("Project lookup rejected")
	default:
		entry.Info("Project lookup completed")
	}
}
