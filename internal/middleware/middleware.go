package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"project-lookup-api/internal/cors"
)

// CORS middleware adds the shared CORS header set and answers preflight
// requests for routes that do not handle OPTIONS themselves.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		cors.Apply(c.Writer.Header())

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// NotFound returns a JSON 404 that still carries the CORS headers
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		cors.Apply(c.Writer.Header())
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}
}

// Recovery converts panics in gin handlers into a JSON 500 with CORS headers
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Recovered from panic")

		cors.Apply(c.Writer.Header())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": fmt.Sprint(recovered),
		})
	})
}
