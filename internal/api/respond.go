package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	projectservice "github.com/thenoetrevino/projectapi/internal/services/project"
	taskservice "github.com/thenoetrevino/projectapi/internal/services/task"
)

const msgInvalidBody = "invalid request body"

// respondError maps service errors to status codes. Anything unrecognised
// goes to the catch-all responder.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, projectservice.ErrEmptyName),
		errors.Is(err, taskservice.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, projectservice.ErrProjectNotFound),
		errors.Is(err, taskservice.ErrProjectNotFound),
		errors.Is(err, taskservice.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
	}
}

// bindBody decodes the JSON body into dst. An empty body decodes as {}.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return false
	}
	return true
}

// pathID parses the :id segment. Values that are not positive integers
// yield 0, which matches no row.
func pathID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
