package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"project-lookup-api/internal/cors"
	"project-lookup-api/internal/middleware"
	"project-lookup-api/pkg/lambda"
)

// maxBodyBytes is the largest request body the local server accepts,
// matching API Gateway's 10 MB payload cap.
const maxBodyBytes = 10 << 20

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ProjectHandler *ProjectHandler
	Logger         *logrus.Logger
}

// SetupRoutes configures the local development server
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(config.Logger))
	router.Use(middleware.Recovery(config.Logger))
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	health := router.Group("/health")
	health.Use(middleware.CORS())
	{
		health.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"service":   "project-lookup-api",
				"timestamp": time.Now().UTC(),
			})
		})
		health.OPTIONS("", func(c *gin.Context) {})
	}

	// The project endpoint answers every method itself, preflight included
	router.Any("/projects", GinAdapter(config.ProjectHandler.Handle))
}

// GinAdapter serves a lambda.HandlerFunc from gin so the local server runs
// exactly the code deployed to Lambda.
func GinAdapter(handle lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
		if err != nil {
			cors.Apply(c.Writer.Header())
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
			return
		}
		if len(body) > maxBodyBytes {
			cors.Apply(c.Writer.Header())
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
			return
		}

		headers := make(map[string]string, len(c.Request.Header))
		for k := range c.Request.Header {
			headers[k] = c.Request.Header.Get(k)
		}

		req := &lambda.Request{
			HTTPMethod: c.Request.Method,
			Path:       c.Request.URL.Path,
			Headers:    headers,
			Body:       string(body),
			RequestID:  c.GetString(middleware.RequestIDKey),
		}

		resp := handle(c.Request.Context(), req)

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Status(resp.StatusCode)
		if resp.Body != "" {
			c.Writer.WriteString(resp.Body)
		}
	}
}
