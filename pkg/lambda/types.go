package lambda

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	HTTPMethod string            `json:"httpMethod"`
	Path       string            `json:"path"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
	RequestID  string            `json:"requestId"`
}

// IsPreflight reports whether the request is a CORS preflight
func (r *Request) IsPreflight() bool {
	return r != nil && r.HTTPMethod == http.MethodOptions
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler. It always produces a response.
type HandlerFunc func(ctx context.Context, req *Request) *Response

// FromProxyRequest converts an API Gateway REST (payload v1) event
func FromProxyRequest(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		HTTPMethod: event.HTTPMethod,
		Path:       event.Path,
		Headers:    event.Headers,
		Body:       decodeBody(event.Body, event.IsBase64Encoded),
		RequestID:  requestID(event.RequestContext.RequestID),
	}
}

// FromHTTPRequest converts an API Gateway HTTP API (payload v2) event
func FromHTTPRequest(event events.APIGatewayV2HTTPRequest) *Request {
	return &Request{
		HTTPMethod: event.RequestContext.HTTP.Method,
		Path:       event.RawPath,
		Headers:    event.Headers,
		Body:       decodeBody(event.Body, event.IsBase64Encoded),
		RequestID:  requestID(event.RequestContext.RequestID),
	}
}

// ToProxyResponse converts the response to an API Gateway REST response
func (r *Response) ToProxyResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       r.Body,
	}
}

// ToHTTPResponse converts the response to an API Gateway HTTP API response
func (r *Response) ToHTTPResponse() events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       r.Body,
	}
}

// decodeBody undoes API Gateway's base64 encoding of binary bodies. A body
// that fails to decode is passed through and left for the handler to reject.
func decodeBody(body string, isBase64 bool) string {
	if !isBase64 || body == "" {
		return body
	}
	decoded, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return body
	}
	return string(decoded)
}

func requestID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}
