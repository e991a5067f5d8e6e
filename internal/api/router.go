// Package api exposes the project and task services over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/projectapi/internal/app"
)

const statusMessage = "Project API is running"

// NewRouter builds the gin engine. Global middleware is installed before any
// route so routes added later by callers are covered too.
func NewRouter(a *app.App, metrics *Metrics) *gin.Engine {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	router := gin.New()
	router.Use(
		requestLogger(logger, metrics),
		cors.Default(),
		recoverer(logger),
		errorResponder(logger),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": statusMessage})
	})
	router.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.Snapshot())
	})

	NewProjectHandler(a.ProjectService, a.TaskService).Register(router.Group("/projects"))
	NewTaskHandler(a.TaskService).Register(router.Group("/tasks"))

	return router
}
